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

// A KmerEncoder maps k-mers over the nucleotide alphabet to base-4
// positional codes, where the first base is the most significant digit.
// Two bits per base, i.e. k-mers of up to 32 bases fit into a uint64.
type KmerEncoder struct {
  k     int
  mask  uint64
  shift uint
  al    ComplementableAlphabet
}

/* -------------------------------------------------------------------------- */

func NewKmerEncoder(k int) (KmerEncoder, error) {
  if k < KsizeMin || k > KsizeMax {
    return KmerEncoder{}, InvalidKsizeError{k}
  }
  return KmerEncoder{
    k    : k,
    mask : (uint64(1) << uint(2*k)) - 1,
    shift: uint(2*(k-1)),
    al   : NucleotideAlphabet{} }, nil
}

/* -------------------------------------------------------------------------- */

func (obj KmerEncoder) Ksize() int {
  return obj.k
}

// Compute the code of the k-mer as read, without considering the
// reverse complement strand.
func (obj KmerEncoder) EncodeForward(kmer string) (uint64, error) {
  if len(kmer) != obj.k {
    return 0, LengthMismatchError{obj.k, len(kmer)}
  }
  s := uint64(0)
  for i := 0; i < len(kmer); i++ {
    c, err := obj.al.Code(kmer[i])
    if err != nil {
      return 0, InvalidCharacterError{kmer[i], i}
    }
    s = s << 2 | uint64(c)
  }
  return s, nil
}

// Compute the code of the reverse complement, i.e. reverse the k
// encoded bases and complement each one.
func (obj KmerEncoder) ReverseComplement(code uint64) uint64 {
  r := uint64(0)
  for i := 0; i < obj.k; i++ {
    c, _ := obj.al.ComplementCoded(byte(code & 3))
    r    = r << 2 | uint64(c)
    code = code >> 2
  }
  return r
}

// Compute the canonical code, i.e. the minimum of the forward and
// reverse complement codes. Both strands of a k-mer map to the same
// canonical code.
func (obj KmerEncoder) Encode(kmer string) (uint64, error) {
  s, err := obj.EncodeForward(kmer)
  if err != nil {
    return 0, err
  }
  if r := obj.ReverseComplement(s); r < s {
    return r, nil
  }
  return s, nil
}

func (obj KmerEncoder) Decode(code uint64) string {
  kmer := make([]byte, obj.k)
  for i := obj.k-1; i >= 0; i-- {
    c, _ := obj.al.Decode(byte(code & 3))
    kmer[i] = c
    code    = code >> 2
  }
  return string(kmer)
}

// Canonical string representation of a k-mer, i.e. the decoded
// canonical code in upper case.
func (obj KmerEncoder) Canon(kmer string) (string, error) {
  code, err := obj.Encode(kmer)
  if err != nil {
    return "", err
  }
  return obj.Decode(code), nil
}
