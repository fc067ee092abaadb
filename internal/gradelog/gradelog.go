// Package gradelog keeps an append-only CSV record of grading runs.
package gradelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the grade log.
type Entry struct {
	Timestamp time.Time
	RunID     uuid.UUID
	Student   string
	Step      int
	Score     int
	MaxScore  int
	Grade     string
}

// Header is the CSV header for grade-log.csv.
const Header = "timestamp,run_id,student,step,score,max_score,grade"

// FileName is the log file created inside the log directory.
const FileName = "grade-log.csv"

const (
	numFields    = 7
	colTimestamp = 0
	colRunID     = 1
	colStudent   = 2
	colStep      = 3
	colScore     = 4
	colMaxScore  = 5
	colGrade     = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colRunID] = e.RunID.String()
	row[colStudent] = e.Student
	row[colStep] = strconv.Itoa(e.Step)
	row[colScore] = strconv.Itoa(e.Score)
	row[colMaxScore] = strconv.Itoa(e.MaxScore)
	row[colGrade] = e.Grade
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	runID, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run_id %q: %w", record[colRunID], err)
	}

	ints := make([]int, 3)
	for i, col := range []int{colStep, colScore, colMaxScore} {
		ints[i], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing column %d %q: %w", col+1, record[col], err)
		}
	}

	return Entry{
		Timestamp: ts,
		RunID:     runID,
		Student:   record[colStudent],
		Step:      ints[0],
		Score:     ints[1],
		MaxScore:  ints[2],
		Grade:     record[colGrade],
	}, nil
}

// Append writes entries to <dir>/grade-log.csv, creating the file and header
// if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening grade log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <dir>/grade-log.csv, or nil if the file does
// not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening grade log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grade log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Best returns each student's highest-scoring entry per step, keeping the
// earliest on ties.
func Best(entries []Entry) []Entry {
	type key struct {
		student string
		step    int
	}
	idx := make(map[key]int)
	var out []Entry
	for _, e := range entries {
		k := key{e.Student, e.Step}
		i, ok := idx[k]
		if !ok {
			idx[k] = len(out)
			out = append(out, e)
			continue
		}
		if e.Score*out[i].MaxScore > out[i].Score*e.MaxScore {
			out[i] = e
		}
	}
	return out
}
