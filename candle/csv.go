package candle

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the accepted timestamp formats, tried in order.
// Integer fields parse as unix seconds before any layout applies.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadCSV reads OHLC bars from a CSV file.
func LoadCSV(path string) ([]Bar, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("candle: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f)
}

// ReadCSV parses OHLC bars from CSV records of the form
// time,open,high,low,close with optional extra columns, which are
// ignored. A header row is detected by a non-numeric open field and
// skipped. Timestamps parse as RFC 3339, "2006-01-02 15:04:05",
// "2006-01-02", or unix seconds.
func ReadCSV(r io.Reader) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var bars []Bar
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("candle: read csv: %w", err)
		}
		line++
		if len(rec) < 5 {
			return nil, fmt.Errorf("candle: line %d: want at least 5 fields, got %d", line, len(rec))
		}
		if line == 1 && looksLikeHeader(rec) {
			continue
		}
		bar, err := parseBar(rec)
		if err != nil {
			return nil, fmt.Errorf("candle: line %d: %w", line, err)
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("candle: no bars found")
	}
	return bars, nil
}

func parseBar(rec []string) (Bar, error) {
	t, err := parseTime(rec[0])
	if err != nil {
		return Bar{}, err
	}
	var vals [4]float64
	for i, name := range [...]string{"open", "high", "low", "close"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return Bar{}, fmt.Errorf("parse %s %q", name, rec[i+1])
		}
		vals[i] = v
	}
	return Bar{T: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q", s)
}

// looksLikeHeader reports whether the record is a header row: the open
// column does not parse as a number.
func looksLikeHeader(rec []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	return err != nil
}
