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

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmercount"
import   "github.com/pbenner/threadpool"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  NoZeros    bool
  Cumulative bool
  Plot       string
  MySQL      string
  MySQLTable string
  ChunkSize  int
  Threads    int
  Verbose    int
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
  if filename == "" {
    if err := s.ReadFasta(os.Stdin); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
    if err := s.ImportFasta(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return s
}

/* -------------------------------------------------------------------------- */

func saveHistogramPlot(config Config, filename string, histogram [][2]uint64) {
  xy := make(plotter.XYs, len(histogram))
  for i := 0; i < len(histogram); i++ {
    xy[i].X = float64(histogram[i][0])
    xy[i].Y = float64(histogram[i][1])
  }
  p := plot.New()
  p.Title.Text = ""
  p.X.Label.Text = "count"
  p.Y.Label.Text = "number of k-mers"

  if err := plotutil.AddLines(p, xy); err != nil {
    panic(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    panic(err)
  }
  PrintStderr(config, 1, "Wrote histogram plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func kmerHistogram(config Config, k int, filenameFasta string) {
  var counts *KmerCountTable

  if config.MySQL != "" {
    PrintStderr(config, 1, "Importing counts from table `%s'... ", config.MySQLTable)
    if t, err := ImportKmerCountTableFromMySQL(k, config.MySQL, config.MySQLTable); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    } else {
      PrintStderr(config, 1, "done\n")
      counts = t
    }
  } else {
    ss := ImportFasta(config, filenameFasta)
    if t, err := NewKmerCountTable(k); err != nil {
      log.Fatal(err)
    } else {
      counts = t
    }
    if config.Threads > 1 {
      pool := threadpool.New(config.Threads, 100*config.Threads)
      for _, name := range ss.Seqnames {
        if _, err := counts.ParallelConsume(ss.Sequences[name], config.ChunkSize, pool); err != nil {
          log.Fatal(err)
        }
      }
    } else {
      if _, err := ss.Consume(counts, true); err != nil {
        log.Fatal(err)
      }
    }
  }
  histogram := counts.Histo(!config.NoZeros)
  if config.Cumulative {
    sum := uint64(0)
    for i := 0; i < len(histogram); i++ {
      sum += histogram[i][1]
      histogram[i][1] = sum
    }
  }
  fmt.Printf("%15s\t%15s\n", "x", "y")
  for i := 0; i < len(histogram); i++ {
    fmt.Printf("%15d\t%15d\n", histogram[i][0], histogram[i][1])
  }
  if config.Plot != "" {
    saveHistogramPlot(config, config.Plot, histogram)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optNoZeros    := options.   BoolLong("no-zeros",     0 ,          "omit frequencies with no k-mers")
  optCumulative := options.   BoolLong("cumulative",  'c',          "compute cumulative histogram")
  optPlot       := options. StringLong("plot",         0 , "",      "save histogram plot to the given file [e.g. histogram.pdf]")
  optMySQL      := options. StringLong("mysql",        0 , "",      "import counts from the given mysql database [USER:PASSWORD@tcp(HOST:PORT)/DATABASE]")
  optMySQLTable := options. StringLong("mysql-table",  0 , "kmers", "name of the mysql table [default: kmers]")
  optChunkSize  := options.    IntLong("chunk-size",   0 ,  1000000, "chunk size for multi-threaded counting [default: 1000000]")
  optThreads    := options.    IntLong("threads",      0 ,  1,      "number of threads [default: 1]")
  optVerbose    := options.CounterLong("verbose",     'v',          "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',          "print help")

  options.SetParameters("<KSIZE> [<INPUT.fasta>]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.NoZeros    = *optNoZeros
  config.Cumulative = *optCumulative
  config.Plot       = *optPlot
  config.MySQL      = *optMySQL
  config.MySQLTable = *optMySQLTable
  config.ChunkSize  = *optChunkSize
  config.Threads    = *optThreads
  config.Verbose    = *optVerbose
  // check required arguments
  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameFasta := ""
  if len(options.Args()) == 2 {
    filenameFasta = options.Args()[1]
  }
  kmerHistogram(config, int(k), filenameFasta)
}
