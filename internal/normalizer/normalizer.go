// Package normalizer parses raw bank statement CSV exports into canonical
// transaction records. Parsing is all-or-nothing: a single malformed field
// rejects the whole batch.
package normalizer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"
	"fjacquet/bank-ledger/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// requiredColumns are the statement columns every batch must carry.
var requiredColumns = []string{"Date", "Details", "Amount", "Debit/Credit", "Status"}

// statementRow represents a single raw row in a statement CSV export.
// All fields are read as strings and converted during normalization.
type statementRow struct {
	Date      string `csv:"Date"`
	Details   string `csv:"Details"`
	Amount    string `csv:"Amount"`
	Direction string `csv:"Debit/Credit"`
	Status    string `csv:"Status"`
}

// trimHeaderReader wraps a csv.Reader and trims incidental whitespace from
// the header row so column names match the struct tags.
type trimHeaderReader struct {
	reader *csv.Reader
	row    int
}

func (r *trimHeaderReader) Read() ([]string, error) {
	record, err := r.reader.Read()
	if err != nil {
		return record, err
	}
	if r.row == 0 {
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
	}
	r.row++
	return record, nil
}

func (r *trimHeaderReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Parse reads a statement CSV from r and returns the normalized transaction
// records in input order, Category unset. On any failure the whole input is
// rejected and no transactions are returned.
func Parse(r io.Reader, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading statement input: %w", err)
	}

	if err := validateHeader(data); err != nil {
		logger.WithError(err).Error("Statement header validation failed")
		return nil, err
	}

	var rows []*statementRow
	if err := gocsv.UnmarshalCSV(&trimHeaderReader{reader: csv.NewReader(bytes.NewReader(data))}, &rows); err != nil {
		logger.WithError(err).Error("Failed to read statement CSV")
		return nil, &parsererror.ParseError{Field: "csv", Err: err}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := normalizeRow(row)
		if err != nil {
			logger.WithError(err).Error("Rejecting statement batch")
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	logger.WithField("count", len(transactions)).Info("Normalized statement batch")
	return transactions, nil
}

// ParseFile is a convenience wrapper around Parse for on-disk statements.
func ParseFile(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening statement file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file, logger)
}

// validateHeader checks that all required columns are present after
// trimming the header cells.
func validateHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return &parsererror.ParseError{Field: "header", Err: err}
	}

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[strings.TrimSpace(name)] = true
	}

	for _, column := range requiredColumns {
		if !present[column] {
			return &parsererror.MissingColumnError{Column: column}
		}
	}
	return nil
}

// normalizeRow converts a raw statement row into a Transaction. Details is
// trimmed but not case-normalized here; case folding happens only during
// keyword matching.
func normalizeRow(row *statementRow) (models.Transaction, error) {
	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Field: "Amount", Value: row.Amount, Err: err}
	}

	date, err := models.ParseDate(row.Date)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Field: "Date", Value: row.Date, Err: err}
	}

	return models.Transaction{
		Date:      date,
		Details:   strings.TrimSpace(row.Details),
		Amount:    amount,
		Direction: strings.TrimSpace(row.Direction),
		Status:    strings.TrimSpace(row.Status),
	}, nil
}
