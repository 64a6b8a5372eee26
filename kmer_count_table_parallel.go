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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// Count all windows of length k of the given sequence by splitting it
// into chunks of the given size that are processed concurrently on the
// given thread pool. Chunks overlap by k-1 characters so that every
// window is counted exactly once. Counts and return value are identical
// to a call to Consume with skipBadKmers set to true.
func (obj *KmerCountTable) ParallelConsume(sequence []byte, chunkSize int, pool threadpool.ThreadPool) (int, error) {
  if chunkSize < 1 {
    return 0, fmt.Errorf("ParallelConsume(): invalid chunk size `%d'", chunkSize)
  }
  k       := obj.Ksize()
  nchunks := divIntUp(len(sequence), chunkSize)
  tables  := make([]*KmerCountTable, nchunks)
  ns      := make([]int, nchunks)

  pool.RangeJob(0, nchunks, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    from := i*chunkSize
    to   := iMin(from+chunkSize+k-1, len(sequence))
    tables[i] = &KmerCountTable{
      counts : make(map[uint64]uint64),
      encoder: obj.encoder }
    ns[i], _ = tables[i].Consume(sequence[from:to], true)
    return nil
  })
  n := 0
  for i := 0; i < nchunks; i++ {
    for code, count := range tables[i].counts {
      obj.counts[code] += count
    }
    n += ns[i]
  }
  obj.consumed += uint64(len(sequence))
  return n, nil
}
