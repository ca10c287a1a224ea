package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/bank-ledger/internal/logging"
	"fjacquet/bank-ledger/internal/models"

	"github.com/gocarina/gocsv"
)

// Snapshot persists the full transaction history as a single typed CSV
// document. Every save overwrites the whole file; a load reconstructs the
// exact column types (Date as date, Amount as decimal, the rest as strings)
// so that a save/load round trip is value-identical.
type Snapshot struct {
	path   string
	logger logging.Logger
}

// NewSnapshot creates a snapshot store backed by the CSV file at path.
func NewSnapshot(path string, logger logging.Logger) *Snapshot {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Snapshot{
		path:   path,
		logger: logger,
	}
}

// Load reads the persisted transaction set. A missing file is not an
// error: it returns an empty set, matching the state before any import.
func (s *Snapshot) Load() ([]models.Transaction, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.path).Debug("Ledger snapshot not found, starting empty")
			return nil, nil
		}
		return nil, fmt.Errorf("error opening ledger snapshot: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing ledger snapshot: %w", err)
	}

	s.logger.WithField("count", len(transactions)).Debug("Loaded ledger snapshot")
	return transactions, nil
}

// Save overwrites the snapshot with the given transaction set.
func (s *Snapshot) Save(transactions []models.Transaction) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error creating ledger snapshot: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing ledger snapshot: %w", err)
	}

	s.logger.WithField("count", len(transactions)).Info("Saved ledger snapshot")
	return nil
}
