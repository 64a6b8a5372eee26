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

/* -------------------------------------------------------------------------- */

// Smallest and largest admissible k-mer size. With two bits per nucleotide
// a k-mer of size 32 fills a uint64.
const KsizeMin = 1
const KsizeMax = 32

/* -------------------------------------------------------------------------- */

type InvalidKsizeError struct {
  Ksize int
}

func (err InvalidKsizeError) Error() string {
  return fmt.Sprintf("invalid k-mer size `%d': size must be between %d and %d", err.Ksize, KsizeMin, KsizeMax)
}

/* -------------------------------------------------------------------------- */

type LengthMismatchError struct {
  Ksize  int
  Length int
}

func (err LengthMismatchError) Error() string {
  return fmt.Sprintf("k-mer has length `%d' but expected length `%d'", err.Length, err.Ksize)
}

/* -------------------------------------------------------------------------- */

type InvalidCharacterError struct {
  Char     byte
  Position int
}

func (err InvalidCharacterError) Error() string {
  return fmt.Sprintf("invalid character `%c' at position `%d'", err.Char, err.Position)
}
