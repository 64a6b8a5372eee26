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

// Iterator over all windows of length k of a sequence. Codes are updated
// incrementally, i.e. appending a base to the window shifts the forward
// code left and the reverse complement code right. A window is valid if
// the run of consecutive valid characters covers the full window.
type KmerCodeIterator struct {
  encoder KmerEncoder
  c1      []byte
  c2      []byte
  fwd     uint64
  rev     uint64
  run     int
  i       int
}

/* -------------------------------------------------------------------------- */

func NewKmerCodeIterator(encoder KmerEncoder, sequence []byte) KmerCodeIterator {
  // precompute sequence codes, 0xFF marks characters that are not
  // part of the alphabet
  c1 := make([]byte, len(sequence))
  c2 := make([]byte, len(sequence))
  for i := 0; i < len(sequence); i++ {
    if r, err := encoder.al.Code(sequence[i]); err != nil {
      c1[i] = 0xFF
      c2[i] = 0xFF
    } else {
      c1[i]    = r
      c2[i], _ = encoder.al.ComplementCoded(r)
    }
  }
  it := KmerCodeIterator{encoder: encoder, c1: c1, c2: c2}
  for j := 0; j < encoder.k && j < len(c1); j++ {
    it.roll(j)
  }
  return it
}

/* -------------------------------------------------------------------------- */

func (obj *KmerCodeIterator) roll(j int) {
  if obj.c1[j] == 0xFF {
    obj.run = 0
    return
  }
  obj.fwd = (obj.fwd << 2 | uint64(obj.c1[j])) & obj.encoder.mask
  obj.rev = (obj.rev >> 2) | (uint64(obj.c2[j]) << obj.encoder.shift)
  obj.run++
}

/* -------------------------------------------------------------------------- */

func (obj KmerCodeIterator) Ok() bool {
  return obj.i + obj.encoder.k <= len(obj.c1)
}

func (obj KmerCodeIterator) Valid() bool {
  return obj.run >= obj.encoder.k
}

func (obj KmerCodeIterator) GetPosition() int {
  return obj.i
}

// Canonical code of the current window, or 0 if the window is not valid.
func (obj KmerCodeIterator) GetCode() uint64 {
  if !obj.Valid() {
    return 0
  }
  if obj.rev < obj.fwd {
    return obj.rev
  }
  return obj.fwd
}

// Canonical string representation of the current window, or the empty
// string if the window is not valid.
func (obj KmerCodeIterator) GetKmer() string {
  if !obj.Valid() {
    return ""
  }
  return obj.encoder.Decode(obj.GetCode())
}

func (obj *KmerCodeIterator) Next() {
  obj.i++
  if obj.Ok() {
    obj.roll(obj.i + obj.encoder.k - 1)
  }
}
