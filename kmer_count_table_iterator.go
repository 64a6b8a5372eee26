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

// Iterator over the entries of a KmerCountTable in ascending order of
// canonical codes. Entries added or removed after the iterator was
// created are not reflected.
type KmerCountTableIterator struct {
  table *KmerCountTable
  codes []uint64
  i     int
}

/* -------------------------------------------------------------------------- */

func (obj *KmerCountTable) Iterate() KmerCountTableIterator {
  return KmerCountTableIterator{table: obj, codes: obj.Codes()}
}

/* -------------------------------------------------------------------------- */

func (obj KmerCountTableIterator) Ok() bool {
  return obj.i < len(obj.codes)
}

func (obj KmerCountTableIterator) GetCode() uint64 {
  return obj.codes[obj.i]
}

func (obj KmerCountTableIterator) GetCount() uint64 {
  return obj.table.GetCode(obj.codes[obj.i])
}

func (obj KmerCountTableIterator) GetKmer() string {
  return obj.table.encoder.Decode(obj.codes[obj.i])
}

func (obj *KmerCountTableIterator) Next() {
  obj.i++
}
