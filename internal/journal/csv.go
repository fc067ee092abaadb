package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,account,description,debit,credit"

const (
	numFields  = 6
	colEntryID = 0
	colDate    = 1
	colAccount = 2
	colDesc    = 3
	colDebit   = 4
	colCredit  = 5
)

// ReadLegs reads all legs from a journal.csv reader.
func ReadLegs(r io.Reader) ([]model.Leg, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var legs []model.Leg
	for i, rec := range records[1:] {
		leg, err := UnmarshalLeg(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

// WriteLegs writes legs to a journal.csv writer (including header).
func WriteLegs(w io.Writer, legs []model.Leg) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, leg := range legs {
		if err := cw.Write(MarshalLeg(leg)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLeg converts a Leg to a CSV row ([]string).
func MarshalLeg(leg model.Leg) []string {
	row := make([]string, numFields)
	row[colEntryID] = leg.EntryID
	row[colDate] = leg.Date.String()
	row[colAccount] = leg.Account
	row[colDesc] = leg.Description

	if !leg.Debit.IsZero() {
		row[colDebit] = leg.Debit.StringFixed(2)
	}
	if !leg.Credit.IsZero() {
		row[colCredit] = leg.Credit.StringFixed(2)
	}
	return row
}

// UnmarshalLeg converts a CSV row to a Leg.
func UnmarshalLeg(record []string) (model.Leg, error) {
	if len(record) != numFields {
		return model.Leg{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Leg{}, err
	}

	account := strings.TrimSpace(record[colAccount])
	if account == "" {
		return model.Leg{}, errors.New("missing account")
	}

	var debit, credit decimal.Decimal

	if s := strings.TrimSpace(record[colDebit]); s != "" {
		debit, err = decimal.NewFromString(s)
		if err != nil {
			return model.Leg{}, fmt.Errorf("parsing debit %q: %w", s, err)
		}
	}

	if s := strings.TrimSpace(record[colCredit]); s != "" {
		credit, err = decimal.NewFromString(s)
		if err != nil {
			return model.Leg{}, fmt.Errorf("parsing credit %q: %w", s, err)
		}
	}

	return model.Leg{
		EntryID:     strings.TrimSpace(record[colEntryID]),
		Date:        date,
		Account:     account,
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
	}, nil
}
