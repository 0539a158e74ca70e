// SPDX-License-Identifier: MIT

package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const opReadCSV = "ReadCSV"

// ReadCSV parses a two-column (distance, composition) profile.
// Blank lines and lines starting with '#' are skipped; a first row that does
// not parse as numbers is treated as a header. Fields may be separated by
// commas; surrounding blanks are trimmed.
func ReadCSV(r io.Reader, name string) (*Profile, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var dis, x []float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, profileErrorf(opReadCSV, err)
		}
		if len(rec) < 2 {
			return nil, profileErrorf(opReadCSV, fmt.Errorf("line %d: want 2 fields, got %d", line, len(rec)))
		}
		d, errD := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		v, errX := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errD != nil || errX != nil {
			if line == 1 {
				continue // header
			}
			return nil, profileErrorf(opReadCSV, fmt.Errorf("line %d: %w", line, errors.Join(errD, errX)))
		}
		dis = append(dis, d)
		x = append(x, v)
	}

	return New(dis, x, name)
}

// WriteCSV writes p as a "distance,composition" table with a header row.
func WriteCSV(w io.Writer, p *Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"distance", "composition"}); err != nil {
		return err
	}
	for i := range p.Distance {
		rec := []string{
			strconv.FormatFloat(p.Distance[i], 'g', -1, 64),
			strconv.FormatFloat(p.X[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
