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

import "bufio"
import "bytes"
import "fmt"
import "io"

/* -------------------------------------------------------------------------- */

// Write the table as tab separated (code, count) pairs. If sortCounts
// is true, entries are sorted by count with ties broken by code,
// otherwise entries appear in ascending order of codes.
func (obj *KmerCountTable) WriteCounts(writer io.Writer, sortCounts, sortKeys bool) error {
  if sortCounts && sortKeys {
    return fmt.Errorf("WriteCounts(): cannot sort by both counts and keys")
  }
  codes  := obj.Codes()
  counts := obj.GetCodes(codes)
  if sortCounts {
    sortCodeCountPairs{codes, counts}.Sort()
  }
  for i := 0; i < len(codes); i++ {
    if _, err := fmt.Fprintf(writer, "%d\t%d\n", codes[i], counts[i]); err != nil {
      return err
    }
  }
  return nil
}

// Write the table as tab separated (k-mer, count) pairs. Sorting by
// keys and sorting k-mers lexicographically coincide, since codes
// preserve the alphabetical order of k-mers.
func (obj *KmerCountTable) WriteKmers(writer io.Writer, sortCounts, sortKeys bool) error {
  if sortCounts && sortKeys {
    return fmt.Errorf("WriteKmers(): cannot sort by both counts and kmers")
  }
  codes  := obj.Codes()
  counts := obj.GetCodes(codes)
  if sortCounts {
    sortCodeCountPairs{codes, counts}.Sort()
  }
  for i := 0; i < len(codes); i++ {
    if _, err := fmt.Fprintf(writer, "%s\t%d\n", obj.encoder.Decode(codes[i]), counts[i]); err != nil {
      return err
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func (obj *KmerCountTable) ExportCounts(filename string, sortCounts, sortKeys, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteCounts(writer, sortCounts, sortKeys); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}

func (obj *KmerCountTable) ExportKmers(filename string, sortCounts, sortKeys, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteKmers(writer, sortCounts, sortKeys); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
