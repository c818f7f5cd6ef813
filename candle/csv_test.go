package candle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"time,open,high,low,close,volume",
		"2026-01-05,100,110,95,108,12000",
		"2026-01-06,108,112,104,105,9800",
	}, "\n")

	bars, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("len(bars) = %d, want 2", len(bars))
	}
	got := bars[0]
	if want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC); !got.T.Equal(want) {
		t.Errorf("T = %v, want %v", got.T, want)
	}
	if got.Open != 100 || got.High != 110 || got.Low != 95 || got.Close != 108 {
		t.Errorf("OHLC = (%v, %v, %v, %v), want (100, 110, 95, 108)",
			got.Open, got.High, got.Low, got.Close)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	input := "2026-01-05,100,110,95,108\n2026-01-06,108,112,104,105\n"
	bars, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("len(bars) = %d, want 2", len(bars))
	}
}

func TestReadCSVTimeFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", "2026-01-05T09:30:00Z", time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)},
		{"datetime", "2026-01-05 09:30:00", time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)},
		{"date", "2026-01-05", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"unix seconds", "1767605400", time.Unix(1767605400, 0).UTC()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars, err := ReadCSV(strings.NewReader(tt.in + ",1,2,0.5,1.5\n"))
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if !bars[0].T.Equal(tt.want) {
				t.Errorf("T = %v, want %v", bars[0].T, tt.want)
			}
		})
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "time,open,high,low,close\n"},
		{"too few fields", "2026-01-05,100,110,95\n"},
		{"bad time", "not-a-time,100,110,95,108\n"},
		{"bad price", "2026-01-05,100,oops,95,108\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadCSV() error = nil, want error")
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	data := "time,open,high,low,close\n2026-01-05,100,110,95,108\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	bars, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(bars) != 1 {
		t.Errorf("len(bars) = %d, want 1", len(bars))
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("LoadCSV() error = nil, want error")
	}
}
