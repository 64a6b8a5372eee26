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
import "bytes"
import "io/ioutil"
import "os"
import "testing"

/* -------------------------------------------------------------------------- */

func TestKmerCountTableDump1(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  counts.Count("AAAA")
  counts.Count("TTTT")
  counts.Count("AATT")
  counts.Count("GGGG")
  counts.Count("GGGG")

  buffer := bytes.Buffer{}
  if err := counts.WriteKmers(&buffer, true, false); err != nil {
    test.Error("test failed")
  }
  if buffer.String() != "AATT\t1\nAAAA\t2\nCCCC\t2\n" {
    test.Error("test failed")
  }
  buffer.Reset()
  if err := counts.WriteKmers(&buffer, false, true); err != nil {
    test.Error("test failed")
  }
  if buffer.String() != "AAAA\t2\nAATT\t1\nCCCC\t2\n" {
    test.Error("test failed")
  }
  buffer.Reset()
  if err := counts.WriteCounts(&buffer, true, false); err != nil {
    test.Error("test failed")
  }
  if buffer.String() != "15\t1\n0\t2\n85\t2\n" {
    test.Error("test failed")
  }
  buffer.Reset()
  if err := counts.WriteCounts(&buffer, false, false); err != nil {
    test.Error("test failed")
  }
  if buffer.String() != "0\t2\n15\t1\n85\t2\n" {
    test.Error("test failed")
  }
  // sorting by both counts and keys is not possible
  if err := counts.WriteCounts(&buffer, true, true); err == nil {
    test.Error("test failed")
  }
  if err := counts.WriteKmers(&buffer, true, true); err == nil {
    test.Error("test failed")
  }
}

func TestKmerCountTableDump2(test *testing.T) {
  counts, _ := NewKmerCountTable(4)

  buffer := bytes.Buffer{}
  if err := counts.WriteKmers(&buffer, false, false); err != nil || buffer.Len() != 0 {
    test.Error("test failed")
  }

  counts.SetCount("ACGT", 3)

  filename := "kmer_count_table_dump_test.table"
  if err := counts.ExportKmers(filename, false, true, false); err != nil {
    test.Error("test failed")
  }
  defer os.Remove(filename)

  data, err := ioutil.ReadFile(filename)
  if err != nil {
    test.Error("test failed")
  }
  if string(data) != "ACGT\t3\n" {
    test.Error("test failed")
  }
}
