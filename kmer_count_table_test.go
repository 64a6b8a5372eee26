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

//import "fmt"
import "math"
import "strings"
import "testing"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

func TestKmerCountTable1(test *testing.T) {
  counts, err := NewKmerCountTable(4)
  if err != nil {
    test.Error("test failed")
  }
  if counts.Ksize() != 4 {
    test.Error("test failed")
  }
  if counts.Encoder().Ksize() != 4 {
    test.Error("test failed")
  }
  n, err := counts.Consume([]byte("GGGGGGGGGG"), true)
  if err != nil || n != 7 {
    test.Error("test failed")
  }
  if s, err := counts.Get("GGGG"); err != nil || s != 7 {
    test.Error("test failed")
  }
  // the reverse complement increments the same entry
  if s, err := counts.Get("CCCC"); err != nil || s != 7 {
    test.Error("test failed")
  }
  if counts.Len() != 1 {
    test.Error("test failed")
  }
  if counts.SumCounts() != 7 {
    test.Error("test failed")
  }
  if counts.Consumed() != 10 {
    test.Error("test failed")
  }
}

func TestKmerCountTable2(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  // strict mode stops at the first invalid character, all windows
  // located before it are counted
  n, err := counts.Consume([]byte("GGGGGXGGGGG"), false)
  if n != 2 {
    test.Error("test failed")
  }
  if err == nil {
    test.Error("test failed")
  } else {
    if e, ok := err.(InvalidCharacterError); !ok || e.Char != 'X' || e.Position != 5 {
      test.Error("test failed")
    }
  }
  if s, _ := counts.Get("GGGG"); s != 2 {
    test.Error("test failed")
  }
  // the consumed bases tracker is not updated on error
  if counts.Consumed() != 0 {
    test.Error("test failed")
  }
  // with skipBadKmers all valid windows are counted
  n, err = counts.Consume([]byte("GGGGGXGGGGG"), true)
  if err != nil || n != 4 {
    test.Error("test failed")
  }
  if s, _ := counts.Get("GGGG"); s != 6 {
    test.Error("test failed")
  }
  if counts.Consumed() != 11 {
    test.Error("test failed")
  }
}

func TestKmerCountTable3(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  if s, err := counts.Count("GGGG"); err != nil || s != 1 {
    test.Error("test failed")
  }
  if s, err := counts.Count("cccc"); err != nil || s != 2 {
    test.Error("test failed")
  }
  if _, err := counts.Count("GG"); err == nil {
    test.Error("test failed")
  }
  if _, err := counts.Count("GGNG"); err == nil {
    test.Error("test failed")
  }
  // failed counts leave the table unchanged
  if s, err := counts.Get("GGGG"); err != nil || s != 2 {
    test.Error("test failed")
  }
  if counts.Consumed() != 8 {
    test.Error("test failed")
  }
  // counting codes does not update the consumed bases tracker
  if s := counts.CountCode(85); s != 3 {
    test.Error("test failed")
  }
  if counts.Consumed() != 8 {
    test.Error("test failed")
  }
  if r := counts.GetCodes([]uint64{85, 0}); r[0] != 3 || r[1] != 0 {
    test.Error("test failed")
  }
}

func TestKmerCountTable4(test *testing.T) {
  kmer1 := strings.Repeat("G", 30) + "A"
  kmer2 := "T" + strings.Repeat("C", 30)

  counts, err := NewKmerCountTable(31)
  if err != nil {
    test.Error("test failed")
  }
  if _, err := counts.Count(kmer1); err != nil {
    test.Error("test failed")
  }
  if _, err := counts.Count(kmer2); err != nil {
    test.Error("test failed")
  }
  // kmer2 is the reverse complement of kmer1
  if s, _ := counts.Get(kmer1); s != 2 {
    test.Error("test failed")
  }
  if s, _ := counts.Get(kmer2); s != 2 {
    test.Error("test failed")
  }
  if counts.Len() != 1 {
    test.Error("test failed")
  }
}

func TestKmerCountTable5(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  if err := counts.SetCount("AAAA", 5); err != nil {
    test.Error("test failed")
  }
  if s, _ := counts.Get("AAAA"); s != 5 {
    test.Error("test failed")
  }
  // a count of zero is stored verbatim
  if err := counts.SetCount("AAAA", 0); err != nil {
    test.Error("test failed")
  }
  if counts.Len() != 1 {
    test.Error("test failed")
  }
  if err := counts.Drop("AAAA"); err != nil {
    test.Error("test failed")
  }
  if counts.Len() != 0 {
    test.Error("test failed")
  }
  // dropping an absent k-mer is not an error
  if err := counts.Drop("AAAA"); err != nil {
    test.Error("test failed")
  }
  if err := counts.SetCount("AANA", 1); err == nil {
    test.Error("test failed")
  }

  counts.SetCount("AAAA", 1)
  counts.SetCount("AATT", 2)
  counts.SetCount("ACCA", 3)
  if n := counts.Mincut(2); n != 1 {
    test.Error("test failed")
  }
  if counts.Len() != 2 {
    test.Error("test failed")
  }
  if n := counts.Maxcut(2); n != 1 {
    test.Error("test failed")
  }
  if counts.Len() != 1 {
    test.Error("test failed")
  }
  if s, _ := counts.Get("AATT"); s != 2 {
    test.Error("test failed")
  }
}

func TestKmerCountTable6(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  if counts.Min() != 0 || counts.Max() != 0 {
    test.Error("test failed")
  }
  if h := counts.Histo(true); len(h) != 1 || h[0] != [2]uint64{0, 0} {
    test.Error("test failed")
  }
  if h := counts.Histo(false); len(h) != 0 {
    test.Error("test failed")
  }
  counts.SetCount("AAAA", 1)
  counts.SetCount("AATT", 2)
  counts.SetCount("ACCA", 2)
  if counts.Min() != 1 || counts.Max() != 2 {
    test.Error("test failed")
  }
  h := counts.Histo(true)
  if len(h) != 3 {
    test.Error("test failed")
  }
  if h[0] != [2]uint64{0, 0} || h[1] != [2]uint64{1, 1} || h[2] != [2]uint64{2, 2} {
    test.Error("test failed")
  }
  h = counts.Histo(false)
  if len(h) != 2 {
    test.Error("test failed")
  }
  if h[0] != [2]uint64{1, 1} || h[1] != [2]uint64{2, 2} {
    test.Error("test failed")
  }
}

func TestKmerCountTable7(test *testing.T) {
  counts1, _ := NewKmerCountTable(4)
  counts2, _ := NewKmerCountTable(4)
  counts3, _ := NewKmerCountTable(5)

  counts1.Count("GGGG")
  counts1.Count("GGGG")
  counts2.Count("GGGG")
  counts2.Count("AAAA")
  counts2.Count("AAAA")
  counts2.Count("AAAA")

  countsAdded, newKeys, err := counts1.Add(counts2)
  if err != nil {
    test.Error("test failed")
  }
  if countsAdded != 4 || newKeys != 1 {
    test.Error("test failed")
  }
  if s, _ := counts1.Get("GGGG"); s != 3 {
    test.Error("test failed")
  }
  if s, _ := counts1.Get("AAAA"); s != 3 {
    test.Error("test failed")
  }
  if counts1.Consumed() != 24 {
    test.Error("test failed")
  }
  // tables must have matching k-mer sizes
  if _, _, err := counts1.Add(counts3); err == nil {
    test.Error("test failed")
  }
}

func TestKmerCountTable8(test *testing.T) {
  counts1, _ := NewKmerCountTable(4)
  counts2, _ := NewKmerCountTable(4)

  counts1.SetCount("AAAA", 1)
  counts1.SetCount("AATT", 1)
  counts2.SetCount("AATT", 1)
  counts2.SetCount("ACCA", 1)

  if r := counts1.Union(counts2); len(r) != 3 || r[0] != 0 || r[1] != 15 || r[2] != 20 {
    test.Error("test failed")
  }
  if r := counts1.Intersection(counts2); len(r) != 1 || r[0] != 15 {
    test.Error("test failed")
  }
  if r := counts1.Difference(counts2); len(r) != 1 || r[0] != 0 {
    test.Error("test failed")
  }
  if r := counts2.Difference(counts1); len(r) != 1 || r[0] != 20 {
    test.Error("test failed")
  }
  if r := counts1.SymmetricDifference(counts2); len(r) != 2 || r[0] != 0 || r[1] != 20 {
    test.Error("test failed")
  }
}

func TestKmerCountTable9(test *testing.T) {
  counts1, _ := NewKmerCountTable(4)
  counts2, _ := NewKmerCountTable(4)
  counts3, _ := NewKmerCountTable(4)
  counts4, _ := NewKmerCountTable(4)

  counts1.SetCount("AAAA", 1)
  counts1.SetCount("AATT", 2)
  counts2.SetCount("AAAA", 2)
  counts2.SetCount("AATT", 4)
  counts3.SetCount("ACCA", 1)

  // parallel count vectors have similarity one
  if r := counts1.Cosine(counts2); math.Abs(r - 1.0) > 1e-12 {
    test.Error("test failed")
  }
  if r := counts2.Cosine(counts1); math.Abs(r - 1.0) > 1e-12 {
    test.Error("test failed")
  }
  // disjoint count vectors have similarity zero
  if r := counts1.Cosine(counts3); r != 0.0 {
    test.Error("test failed")
  }
  // empty tables have similarity zero
  if r := counts1.Cosine(counts4); r != 0.0 {
    test.Error("test failed")
  }
}

func TestKmerCountTable10(test *testing.T) {
  counts, _ := NewKmerCountTable(2)

  r, err := counts.KmersAndCodes([]byte("ACGTN"), true)
  if err != nil || len(r) != 4 {
    test.Error("test failed")
  }
  if r[0].Kmer != "AC" || r[0].Code != 1 {
    test.Error("test failed")
  }
  if r[1].Kmer != "CG" || r[1].Code != 6 {
    test.Error("test failed")
  }
  if r[2].Kmer != "AC" || r[2].Code != 1 {
    test.Error("test failed")
  }
  // windows with invalid characters appear as empty entries
  if r[3].Kmer != "" || r[3].Code != 0 {
    test.Error("test failed")
  }
  if _, err := counts.KmersAndCodes([]byte("ACGTN"), false); err == nil {
    test.Error("test failed")
  } else {
    if e, ok := err.(InvalidCharacterError); !ok || e.Position != 4 {
      test.Error("test failed")
    }
  }
}

func TestKmerCountTable11(test *testing.T) {
  sequence := []byte("ACGTACGTNNACGTTTTGGGACATAGCACGTGGCCATAN")

  counts1, _ := NewKmerCountTable(4)
  counts2, _ := NewKmerCountTable(4)

  n1, err := counts1.Consume(sequence, true)
  if err != nil {
    test.Error("test failed")
  }
  pool := threadpool.New(3, 100)

  n2, err := counts2.ParallelConsume(sequence, 5, pool)
  if err != nil {
    test.Error("test failed")
  }
  if n1 != n2 {
    test.Error("test failed")
  }
  if counts1.Consumed() != counts2.Consumed() {
    test.Error("test failed")
  }
  codes1 := counts1.Codes()
  codes2 := counts2.Codes()
  if len(codes1) != len(codes2) {
    test.Error("test failed")
  }
  for i := 0; i < len(codes1); i++ {
    if codes1[i] != codes2[i] {
      test.Error("test failed")
    }
    if counts1.GetCode(codes1[i]) != counts2.GetCode(codes2[i]) {
      test.Error("test failed")
    }
  }
  if _, err := counts2.ParallelConsume(sequence, 0, pool); err == nil {
    test.Error("test failed")
  }
}

func TestKmerCountTable12(test *testing.T) {
  kmers := []string{"AAAA", "AATT", "CCCC"}
  s     := []uint64{2, 1, 2}

  counts, _ := NewKmerCountTable(4)

  counts.Count("AAAA")
  counts.Count("TTTT")
  counts.Count("AATT")
  counts.Count("GGGG")
  counts.Count("GGGG")

  i := 0
  for it := counts.Iterate(); it.Ok(); it.Next() {
    if it.GetKmer() != kmers[i] {
      test.Error("test failed")
    }
    if it.GetCount() != s[i] {
      test.Error("test failed")
    }
    i++
  }
  if i != len(kmers) {
    test.Error("test failed")
  }
}
