// Package report serializes sweep results.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-jury/sweep"
)

const timestampLayout = "20060102150405"

// FileName returns the report path for a sweep of totalRuns juries per
// cell started at t: <dir>/experiment-<totalRuns>-runs-<YYYYmmddHHMMSS>.csv.
func FileName(dir string, totalRuns int, t time.Time) string {
	name := fmt.Sprintf("experiment-%d-runs-%s.csv", totalRuns, t.Format(timestampLayout))
	return filepath.Join(dir, name)
}

// Create creates the report file named by FileName, creating dir if needed.
func Create(dir string, totalRuns int, t time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", dir)
	}

	path := FileName(dir, totalRuns, t)
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating report")
	}

	return f, nil
}

// Save writes the CSV report for rows to the file named by FileName and
// returns its path. A report that fails to write is removed.
func Save(dir string, totalRuns int, t time.Time, policies []string, rows []sweep.Row) (string, error) {
	f, err := Create(dir, totalRuns, t)
	if err != nil {
		return "", err
	}

	err = writeFile(f, func(w io.Writer) error {
		return WriteCSV(w, policies, rows)
	})
	if err != nil {
		return "", err
	}

	return f.Name(), nil
}

// writeFile calls write on f and closes it, removing f on failure.
func writeFile(f *os.File, write func(io.Writer) error) error {
	err := write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		if rerr := os.Remove(f.Name()); rerr != nil {
			glog.Warningf("Unable to remove incomplete report %s: %v", f.Name(), rerr)
		}
		return errors.Wrapf(err, "writing %s", f.Name())
	}

	return nil
}

// WriteCSV writes one record per row with columns dist, n and then one
// column per policy in the given order. Missing counts are written as 0.
func WriteCSV(w io.Writer, policies []string, rows []sweep.Row) error {
	cw := csv.NewWriter(w)
	header := append([]string{"dist", "n"}, policies...)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing header")
	}

	record := make([]string, len(header))
	for _, row := range rows {
		record[0] = row.Dist
		record[1] = strconv.Itoa(row.N)
		for i, name := range policies {
			record[2+i] = strconv.Itoa(row.Counts[name])
		}

		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing row %s, n=%d", row.Dist, row.N)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing report")
}
