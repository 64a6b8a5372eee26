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
import   "bufio"
import   "log"
import   "io"
import   "os"
import   "strconv"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/kmercount"
import   "github.com/pbenner/kmercount/lib/progress"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Strict     bool
  Codes      bool
  SortCounts bool
  SortKeys   bool
  MySQL      string
  MySQLTable string
  Status     bool
  Threads    int
  Verbose    int
}

/* i/o
 * -------------------------------------------------------------------------- */

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

func WriteResult(config Config, counts *KmerCountTable, filenameOut string) {
  var writer io.Writer

  if filenameOut == "" {
    writer = os.Stdout
  } else {
    f, err := os.Create(filenameOut)
    if err != nil {
      log.Fatal(err)
    }
    buffer := bufio.NewWriter(f)
    writer  = buffer
    defer f.Close()
    defer buffer.Flush()
  }
  if config.Codes {
    if err := counts.WriteCounts(writer, config.SortCounts, config.SortKeys); err != nil {
      log.Fatal(err)
    }
  } else {
    if err := counts.WriteKmers(writer, config.SortCounts, config.SortKeys); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

func countKmers(config Config, k int, filenameFasta, filenameOut string) {
  pool := threadpool.New(config.Threads, 100*config.Threads)
  ss   := ImportFasta(config, filenameFasta)

  sequences := make([][]byte, len(ss.Seqnames))
  for i, name := range ss.Seqnames {
    sequences[i] = ss.Sequences[name]
  }
  // create a count table for each thread
  counts := make([]*KmerCountTable, pool.NumberOfThreads())
  for i := 0; i < pool.NumberOfThreads(); i++ {
    if t, err := NewKmerCountTable(k); err != nil {
      log.Fatal(err)
    } else {
      counts[i] = t
    }
  }
  g := pool.NewJobGroup()

  for n, i := len(sequences), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    // add task to the thread pool
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      _, err := counts[pool.GetThreadId()].Consume(sequences[j], !config.Strict)
      return err
    })
    if config.Status {
      progress.New(n, 1000).PrintStderr(i+1)
    }
  }
  if err := pool.Wait(g); err != nil {
    log.Fatal(err)
  }
  // merge thread-local results
  for i := 1; i < len(counts); i++ {
    if _, _, err := counts[0].Add(counts[i]); err != nil {
      log.Fatal(err)
    }
  }
  WriteResult(config, counts[0], filenameOut)

  if config.MySQL != "" {
    PrintStderr(config, 1, "Exporting counts to table `%s'... ", config.MySQLTable)
    if err := counts[0].ExportMySQL(config.MySQL, config.MySQLTable); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optStrict     := options.   BoolLong("strict",       0 ,          "exit with an error if a sequence contains invalid characters")
  optCodes      := options.   BoolLong("codes",        0 ,          "print k-mer codes instead of k-mers")
  optSortCounts := options.   BoolLong("sort-counts",  0 ,          "sort output by counts with ties broken by keys")
  optSortKeys   := options.   BoolLong("sort-keys",    0 ,          "sort output by keys")
  optMySQL      := options. StringLong("mysql",        0 , "",      "export counts to the given mysql database [USER:PASSWORD@tcp(HOST:PORT)/DATABASE]")
  optMySQLTable := options. StringLong("mysql-table",  0 , "kmers", "name of the mysql table [default: kmers]")
  optStatus     := options.   BoolLong("status",       0 ,          "show status bar")
  optThreads    := options.    IntLong("threads",      0 ,  1,      "number of threads [default: 1]")
  optVerbose    := options.CounterLong("verbose",     'v',          "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',          "print help")

  options.SetParameters("<KSIZE> [<INPUT.fasta> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optSortCounts && *optSortKeys {
    log.Fatal("options `--sort-counts' and `--sort-keys' are incompatible")
  }
  config.Strict     = *optStrict
  config.Codes      = *optCodes
  config.SortCounts = *optSortCounts
  config.SortKeys   = *optSortKeys
  config.MySQL      = *optMySQL
  config.MySQLTable = *optMySQLTable
  config.Status     = *optStatus
  config.Threads    = *optThreads
  config.Verbose    = *optVerbose
  // check required arguments
  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }
  countKmers(config, int(k), filenameFasta, filenameOut)
}
