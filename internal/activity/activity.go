// Package activity loads scenario files into model.ActivityData.
package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported activity format")

// Format is an activity file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is an activity document as stored on disk. Chart and Journal name
// CSV files relative to the document.
type File struct {
	model.ActivityData `yaml:",inline"`

	Chart   string `json:"chart,omitempty" yaml:"chart,omitempty"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatOf picks the encoding from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Decode parses an activity document.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, fmt.Errorf("parsing activity JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("parsing activity YAML: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return f, nil
}

// Load reads an activity file, resolves its chart and journal references and
// validates the result.
func Load(path string) (model.ActivityData, error) {
	format, err := FormatOf(path)
	if err != nil {
		return model.ActivityData{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ActivityData{}, fmt.Errorf("reading activity: %w", err)
	}
	f, err := Decode(raw, format)
	if err != nil {
		return model.ActivityData{}, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	data := f.ActivityData

	var chart *accounts.Chart
	if f.Chart != "" {
		chart, err = accounts.Load(resolve(dir, f.Chart))
		if err != nil {
			return model.ActivityData{}, err
		}
		if len(data.ValidAccounts) == 0 {
			data.ValidAccounts = chart.Names()
		}
	}

	if f.Journal != "" {
		txns, err := journal.Load(resolve(dir, f.Journal), checker(chart), data.FiscalYear)
		if err != nil {
			return model.ActivityData{}, err
		}
		data.Transactions = append(data.Transactions, txns...)
	}

	if err := Validate(data, chart); err != nil {
		return model.ActivityData{}, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Validate checks struct constraints and the journal invariants of the
// transactions. Account names are only checked when a chart is given.
func Validate(data model.ActivityData, chart *accounts.Chart) error {
	if err := validate.Struct(data); err != nil {
		return fmt.Errorf("invalid activity: %w", err)
	}
	if err := journal.Err(journal.ValidateTransactions(data.Transactions, checker(chart), data.FiscalYear)); err != nil {
		return fmt.Errorf("invalid transactions: %w", err)
	}
	return nil
}

// Save writes an activity document, encoded by the path's extension.
func Save(path string, f File) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var out []byte
	if format == FormatJSON {
		out, err = json.MarshalIndent(f, "", "  ")
	} else {
		out, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("encoding activity: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing activity: %w", err)
	}
	return nil
}

func checker(chart *accounts.Chart) journal.AccountChecker {
	if chart == nil {
		return nil
	}
	return chart
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
