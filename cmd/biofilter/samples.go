package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readSamples parses one value per line or a CSV column. A first row that
// does not parse is taken as a header. Blank lines and lines starting with
// '#' are skipped.
func readSamples(r io.Reader, column int) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("column must be >= 0, got %d", column)
	}

	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var out []float64
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if column >= len(rec) {
			return nil, fmt.Errorf("row %d: no column %d (have %d)", row, column, len(rec))
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(rec[column]), 64)
		if err != nil {
			if len(out) == 0 && row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, errors.New("no samples in input")
	}
	return out, nil
}

func writeSamples(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range samples {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// saveSamples writes samples to path.
func saveSamples(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return closeAfter(f, writeSamples(f, samples))
}

// closeAfter closes wc and returns writeErr, or the close error when the
// write succeeded.
func closeAfter(wc io.Closer, writeErr error) error {
	if err := wc.Close(); err != nil && writeErr == nil {
		return fmt.Errorf("close output: %w", err)
	}
	return writeErr
}
