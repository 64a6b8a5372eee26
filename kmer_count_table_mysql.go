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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import k-mer counts from mysql
 * -------------------------------------------------------------------------- */

// Import a k-mer count table of the given k-mer size from a MySQL
// database. The table must have a kmer and a count column.
func ImportKmerCountTableFromMySQL(k int, datasource, table string) (*KmerCountTable, error) {
  counts, err := NewKmerCountTable(k)
  if err != nil {
    return nil, err
  }
  /* variables for storing a single database row */
  var i_kmer  string
  var i_count uint64

  /* open connection */
  db, err := sql.Open("mysql", datasource)
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return nil, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT kmer, count FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_kmer, &i_count); err != nil {
      return nil, err
    }
    if err := counts.SetCount(i_kmer, i_count); err != nil {
      return nil, err
    }
  }
  return counts, nil
}

/* export k-mer counts to mysql
 * -------------------------------------------------------------------------- */

// Export the table to a MySQL database, replacing any previous contents
// of the target table.
func (obj *KmerCountTable) ExportMySQL(datasource, table string) error {
  /* open connection */
  db, err := sql.Open("mysql", datasource)
  if err != nil {
    return err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return err
  }

  if _, err := db.Exec(
    fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (kmer VARCHAR(32) NOT NULL, count BIGINT UNSIGNED NOT NULL, PRIMARY KEY (kmer))", table)); err != nil {
    return err
  }
  if _, err := db.Exec(
    fmt.Sprintf("DELETE FROM %s", table)); err != nil {
    return err
  }

  /* send data */
  stmt, err := db.Prepare(
    fmt.Sprintf("INSERT INTO %s (kmer, count) VALUES (?, ?)", table))
  if err != nil {
    return err
  }
  defer stmt.Close()
  for it := obj.Iterate(); it.Ok(); it.Next() {
    if _, err := stmt.Exec(it.GetKmer(), it.GetCount()); err != nil {
      return err
    }
  }
  return nil
}
