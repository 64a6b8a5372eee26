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
import "compress/gzip"
import "io"
import "io/ioutil"
import "os"
import "sort"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded up.
func divIntUp(a, b int) int {
  return (a+b-1)/b
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    io.Copy(w, r)
    w.Close()
  } else {
    w := bufio.NewWriter(&buffer)
    io.Copy(w, r)
    w.Flush()
  }
  return ioutil.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

type sortUint64s []uint64

func (obj sortUint64s) Len() int {
  return len(obj)
}

func (obj sortUint64s) Less(i, j int) bool {
  return obj[i] < obj[j]
}

func (obj sortUint64s) Swap(i, j int) {
  obj[i], obj[j] = obj[j], obj[i]
}

/* -------------------------------------------------------------------------- */

type sortCodeCountPairs struct {
  codes  []uint64
  counts []uint64
}

func (obj sortCodeCountPairs) Len() int {
  return len(obj.codes)
}

func (obj sortCodeCountPairs) Less(i, j int) bool {
  if obj.counts[i] != obj.counts[j] {
    return obj.counts[i] < obj.counts[j]
  }
  return obj.codes[i] < obj.codes[j]
}

func (obj sortCodeCountPairs) Swap(i, j int) {
  obj.codes [i], obj.codes [j] = obj.codes [j], obj.codes [i]
  obj.counts[i], obj.counts[j] = obj.counts[j], obj.counts[i]
}

func (obj sortCodeCountPairs) Sort() {
  sort.Sort(obj)
}
