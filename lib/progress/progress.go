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

package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "fmt"
import "os"

/* -------------------------------------------------------------------------- */

// A Progress prints a status bar for a computation with n steps, of
// which at most k updates are written.
type Progress struct {
  n     int
  k     int
  width int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, n/k, 40}
  if k > n {
    progress.k = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

func (progress Progress) render(i int) string {
  var buffer bytes.Buffer

  p := float64(i)/float64(progress.n)
  // delete line and return carriage
  fmt.Fprintf(&buffer, "%s|", lineDel)

  for j := 1; j < progress.width-1; j++ {
    if float64(j)/float64(progress.width) < p {
      buffer.WriteByte('>')
    } else {
      buffer.WriteByte(' ')
    }
  }
  fmt.Fprintf(&buffer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    buffer.WriteByte('\n')
  }
  return buffer.String()
}

func (progress Progress) PrintStderr(i int) {
  if i == 0 || i == progress.n || (i % progress.k == 0) {
    fmt.Fprint(os.Stderr, progress.render(i))
  }
}
