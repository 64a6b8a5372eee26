/* Copyright (C) 2024 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package kmercount

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"
import "sort"

/* -------------------------------------------------------------------------- */

// A KmerCountTable counts canonical k-mers of a fixed size k, i.e. every
// k-mer is identified with its reverse complement and both strands
// increment the same entry. Keys are canonical codes as computed by
// KmerEncoder.
type KmerCountTable struct {
  counts   map[uint64]uint64
  encoder  KmerEncoder
  consumed uint64
}

/* -------------------------------------------------------------------------- */

func NewKmerCountTable(k int) (*KmerCountTable, error) {
  encoder, err := NewKmerEncoder(k)
  if err != nil {
    return nil, err
  }
  return &KmerCountTable{
    counts : make(map[uint64]uint64),
    encoder: encoder }, nil
}

/* -------------------------------------------------------------------------- */

func (obj *KmerCountTable) Ksize() int {
  return obj.encoder.Ksize()
}

func (obj *KmerCountTable) Encoder() KmerEncoder {
  return obj.encoder
}

// Number of distinct canonical k-mers in the table.
func (obj *KmerCountTable) Len() int {
  return len(obj.counts)
}

// Total number of bases processed by Count and Consume.
func (obj *KmerCountTable) Consumed() uint64 {
  return obj.consumed
}

func (obj *KmerCountTable) SumCounts() uint64 {
  r := uint64(0)
  for _, count := range obj.counts {
    r += count
  }
  return r
}

/* point operations
 * -------------------------------------------------------------------------- */

// Increment the count of the given k-mer and return the new count.
func (obj *KmerCountTable) Count(kmer string) (uint64, error) {
  code, err := obj.encoder.Encode(kmer)
  if err != nil {
    return 0, err
  }
  obj.consumed += uint64(len(kmer))
  return obj.CountCode(code), nil
}

func (obj *KmerCountTable) Get(kmer string) (uint64, error) {
  code, err := obj.encoder.Encode(kmer)
  if err != nil {
    return 0, err
  }
  return obj.GetCode(code), nil
}

// Increment the count of a canonical code directly. The code is not
// validated and the consumed bases tracker is not updated.
func (obj *KmerCountTable) CountCode(code uint64) uint64 {
  obj.counts[code]++
  return obj.counts[code]
}

func (obj *KmerCountTable) GetCode(code uint64) uint64 {
  return obj.counts[code]
}

func (obj *KmerCountTable) GetCodes(codes []uint64) []uint64 {
  r := make([]uint64, len(codes))
  for i, code := range codes {
    r[i] = obj.counts[code]
  }
  return r
}

// Set the count of the given k-mer, overwriting any previous value.
func (obj *KmerCountTable) SetCount(kmer string, count uint64) error {
  code, err := obj.encoder.Encode(kmer)
  if err != nil {
    return err
  }
  obj.counts[code] = count
  return nil
}

/* streaming
 * -------------------------------------------------------------------------- */

// Count all windows of length k of the given sequence. If skipBadKmers
// is true, windows containing characters that are not part of the
// alphabet are skipped and scanning resumes with the first full window
// after the invalid character. Otherwise consumption stops at the first
// invalid character: all windows located before it are counted and an
// InvalidCharacterError carrying the position of the character is
// returned. Returns the number of windows counted.
func (obj *KmerCountTable) Consume(sequence []byte, skipBadKmers bool) (int, error) {
  n := 0
  if !skipBadKmers {
    for i := 0; i < len(sequence); i++ {
      if _, err := obj.encoder.al.Code(sequence[i]); err != nil {
        for it := NewKmerCodeIterator(obj.encoder, sequence[0:i]); it.Ok(); it.Next() {
          obj.CountCode(it.GetCode())
          n++
        }
        return n, InvalidCharacterError{sequence[i], i}
      }
    }
  }
  for it := NewKmerCodeIterator(obj.encoder, sequence); it.Ok(); it.Next() {
    if it.Valid() {
      obj.CountCode(it.GetCode())
      n++
    }
  }
  obj.consumed += uint64(len(sequence))
  return n, nil
}

/* -------------------------------------------------------------------------- */

type KmerCode struct {
  Kmer string
  Code uint64
}

// List the canonical k-mer and code of every window of the given
// sequence. If skipBadKmers is true, invalid windows appear as empty
// entries, otherwise the first invalid character is an error.
func (obj *KmerCountTable) KmersAndCodes(sequence []byte, skipBadKmers bool) ([]KmerCode, error) {
  if !skipBadKmers {
    for i := 0; i < len(sequence); i++ {
      if _, err := obj.encoder.al.Code(sequence[i]); err != nil {
        return nil, InvalidCharacterError{sequence[i], i}
      }
    }
  }
  r := []KmerCode{}
  for it := NewKmerCodeIterator(obj.encoder, sequence); it.Ok(); it.Next() {
    r = append(r, KmerCode{it.GetKmer(), it.GetCode()})
  }
  return r, nil
}

/* pruning
 * -------------------------------------------------------------------------- */

// Remove the given k-mer from the table. Removing a k-mer that is not
// present is not an error.
func (obj *KmerCountTable) Drop(kmer string) error {
  code, err := obj.encoder.Encode(kmer)
  if err != nil {
    return err
  }
  obj.DropCode(code)
  return nil
}

func (obj *KmerCountTable) DropCode(code uint64) {
  delete(obj.counts, code)
}

// Remove all entries with counts below the given threshold. Returns the
// number of entries removed.
func (obj *KmerCountTable) Mincut(minCount uint64) uint64 {
  n := uint64(0)
  for code, count := range obj.counts {
    if count < minCount {
      delete(obj.counts, code)
      n++
    }
  }
  return n
}

// Remove all entries with counts above the given threshold. Returns the
// number of entries removed.
func (obj *KmerCountTable) Maxcut(maxCount uint64) uint64 {
  n := uint64(0)
  for code, count := range obj.counts {
    if count > maxCount {
      delete(obj.counts, code)
      n++
    }
  }
  return n
}

/* summary statistics
 * -------------------------------------------------------------------------- */

// Smallest count in the table, 0 if the table is empty.
func (obj *KmerCountTable) Min() uint64 {
  r, ok := uint64(0), false
  for _, count := range obj.counts {
    if !ok || count < r {
      r, ok = count, true
    }
  }
  return r
}

// Largest count in the table, 0 if the table is empty.
func (obj *KmerCountTable) Max() uint64 {
  r := uint64(0)
  for _, count := range obj.counts {
    if count > r {
      r = count
    }
  }
  return r
}

// Frequency histogram of k-mer counts as (frequency, number of k-mers)
// pairs. If zero is true the histogram contains one row for every
// frequency from 0 up to the maximum count, otherwise only observed
// frequencies are reported.
func (obj *KmerCountTable) Histo(zero bool) [][2]uint64 {
  freq := make(map[uint64]uint64)
  for _, count := range obj.counts {
    freq[count]++
  }
  r := [][2]uint64{}
  if zero {
    max := obj.Max()
    for i := uint64(0); i <= max; i++ {
      r = append(r, [2]uint64{i, freq[i]})
    }
  } else {
    observed := []uint64{}
    for count := range freq {
      observed = append(observed, count)
    }
    sort.Sort(sortUint64s(observed))
    for _, count := range observed {
      r = append(r, [2]uint64{count, freq[count]})
    }
  }
  return r
}

// All canonical codes in the table in ascending order.
func (obj *KmerCountTable) Codes() []uint64 {
  r := make([]uint64, 0, len(obj.counts))
  for code := range obj.counts {
    r = append(r, code)
  }
  sort.Sort(sortUint64s(r))
  return r
}

/* merging
 * -------------------------------------------------------------------------- */

// Add the counts of another table to this table. Returns the total
// number of counts added and the number of new keys. The consumed bases
// tracker of the other table is added as well.
func (obj *KmerCountTable) Add(other *KmerCountTable) (uint64, uint64, error) {
  if obj.Ksize() != other.Ksize() {
    return 0, 0, fmt.Errorf("Add(): k-mer size `%d' does not match k-mer size `%d'", other.Ksize(), obj.Ksize())
  }
  countsAdded := uint64(0)
  newKeys     := uint64(0)
  for code, count := range other.counts {
    if _, ok := obj.counts[code]; !ok {
      newKeys++
    }
    obj.counts[code] += count
    countsAdded      += count
  }
  obj.consumed += other.consumed
  return countsAdded, newKeys, nil
}

/* set operations
 * -------------------------------------------------------------------------- */

func (obj *KmerCountTable) Union(other *KmerCountTable) []uint64 {
  m := make(map[uint64]bool)
  for code := range obj.counts {
    m[code] = true
  }
  for code := range other.counts {
    m[code] = true
  }
  r := make([]uint64, 0, len(m))
  for code := range m {
    r = append(r, code)
  }
  sort.Sort(sortUint64s(r))
  return r
}

func (obj *KmerCountTable) Intersection(other *KmerCountTable) []uint64 {
  r := []uint64{}
  for code := range obj.counts {
    if _, ok := other.counts[code]; ok {
      r = append(r, code)
    }
  }
  sort.Sort(sortUint64s(r))
  return r
}

func (obj *KmerCountTable) Difference(other *KmerCountTable) []uint64 {
  r := []uint64{}
  for code := range obj.counts {
    if _, ok := other.counts[code]; !ok {
      r = append(r, code)
    }
  }
  sort.Sort(sortUint64s(r))
  return r
}

func (obj *KmerCountTable) SymmetricDifference(other *KmerCountTable) []uint64 {
  r := []uint64{}
  for code := range obj.counts {
    if _, ok := other.counts[code]; !ok {
      r = append(r, code)
    }
  }
  for code := range other.counts {
    if _, ok := obj.counts[code]; !ok {
      r = append(r, code)
    }
  }
  sort.Sort(sortUint64s(r))
  return r
}

/* similarity
 * -------------------------------------------------------------------------- */

// Cosine similarity of the two count vectors over the union of keys.
// Returns 0 if either table has zero norm.
func (obj *KmerCountTable) Cosine(other *KmerCountTable) float64 {
  r := 0.0
  a := 0.0
  b := 0.0
  for code, count := range obj.counts {
    x := float64(count)
    y := float64(other.GetCode(code))
    a += x*x
    r += x*y
  }
  for _, count := range other.counts {
    y := float64(count)
    b += y*y
  }
  if a == 0.0 || b == 0.0 {
    return 0.0
  }
  return r/math.Sqrt(a)/math.Sqrt(b)
}
