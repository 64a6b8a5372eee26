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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmercount"

/* -------------------------------------------------------------------------- */

type Config struct {
  Measure string
  Strict  bool
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func ImportFasta(config Config, filename string) SequenceSet {
  s := EmptySequenceSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

/* -------------------------------------------------------------------------- */

func countFasta(config Config, k int, filename string) *KmerCountTable {
  counts, err := NewKmerCountTable(k); if err != nil {
    log.Fatal(err)
  }
  ss := ImportFasta(config, filename)
  if _, err := ss.Consume(counts, !config.Strict); err != nil {
    log.Fatal(err)
  }
  return counts
}

/* -------------------------------------------------------------------------- */

func computeSimilarity(config Config, counts1, counts2 *KmerCountTable) float64 {
  switch config.Measure {
  case "cosine":
    return counts1.Cosine(counts2)
  case "jaccard":
    n := len(counts1.Intersection(counts2))
    m := len(counts1.Union(counts2))
    if m == 0 {
      return 0.0
    }
    return float64(n)/float64(m)
  default:
    panic("internal error")
  }
}

/* -------------------------------------------------------------------------- */

func kmerSimilarity(config Config, k int, filename1, filename2 string) {
  counts1 := countFasta(config, k, filename1)
  counts2 := countFasta(config, k, filename2)

  fmt.Printf("%f\n", computeSimilarity(config, counts1, counts2))
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optMeasure := options. StringLong("measure",  0 , "cosine", "similarity measure [cosine (default), jaccard]")
  optStrict  := options.   BoolLong("strict",   0 ,           "exit with an error if a sequence contains invalid characters")
  optVerbose := options.CounterLong("verbose", 'v',           "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',           "print help")

  options.SetParameters("<KSIZE> <INPUT1.fasta> <INPUT2.fasta>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  switch strings.ToLower(*optMeasure) {
  case "cosine" : config.Measure = "cosine"
  case "jaccard": config.Measure = "jaccard"
  default:
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Strict  = *optStrict
  config.Verbose = *optVerbose
  // check required arguments
  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  kmerSimilarity(config, int(k), options.Args()[1], options.Args()[2])
}
