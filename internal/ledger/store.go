package ledger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tally-ledger/tally/internal/logging"
	"github.com/tally-ledger/tally/internal/model"
)

var (
	// ErrInvalidIndex is returned for an index outside [0, Len()) or when
	// nothing is selected.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrEditInProgress is returned for intents that are not allowed
	// while a record is being edited.
	ErrEditInProgress = errors.New("edit in progress")
	// ErrNotEditing is returned when committing without a begun edit.
	ErrNotEditing = errors.New("not editing")
)

// Backend loads and saves the complete record sequence.
type Backend interface {
	Load() ([]model.Record, error)
	Save(records []model.Record) error
}

// Store owns the ordered record sequence.
type Store struct {
	backend Backend
	logger  *slog.Logger
	records []model.Record
}

// NewStore creates an empty Store. A nil logger discards output.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{backend: backend, logger: logger}
}

// Reload replaces the sequence with the backend's contents. A backend that
// cannot be read leaves an empty ledger; the error is returned for
// reporting only.
func (s *Store) Reload() error {
	records, err := s.backend.Load()
	if err != nil {
		s.records = nil
		s.logger.Warn("records unavailable, starting empty", "error", err)
		return fmt.Errorf("loading records: %w", err)
	}
	s.records = records
	s.logger.Debug("records loaded", "count", len(records))
	return nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Add appends rec and returns its ordinal.
func (s *Store) Add(rec model.Record) int {
	s.records = append(s.records, rec)
	s.persist("add")
	return len(s.records)
}

// Update replaces the record at index in place.
func (s *Store) Update(index int, rec model.Record) error {
	if !s.valid(index) {
		return fmt.Errorf("update %d of %d: %w", index, len(s.records), ErrInvalidIndex)
	}
	s.records[index] = rec
	s.persist("update")
	return nil
}

// Delete removes the record at index; later records move down by one.
func (s *Store) Delete(index int) error {
	if !s.valid(index) {
		return fmt.Errorf("delete %d of %d: %w", index, len(s.records), ErrInvalidIndex)
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.persist("delete")
	return nil
}

// Get returns a copy of the record at index.
func (s *Store) Get(index int) (model.Record, error) {
	if !s.valid(index) {
		return model.Record{}, fmt.Errorf("get %d of %d: %w", index, len(s.records), ErrInvalidIndex)
	}
	return s.records[index], nil
}

// List returns the sequence with ordinals 1..Len().
func (s *Store) List() []model.Entry {
	entries := make([]model.Entry, len(s.records))
	for i, rec := range s.records {
		entries[i] = model.Entry{Ordinal: i + 1, Record: rec}
	}
	return entries
}

// Records returns a copy of the sequence.
func (s *Store) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) valid(index int) bool {
	return index >= 0 && index < len(s.records)
}

// persist writes the whole sequence. A failed write keeps the in-memory
// change and is only logged.
func (s *Store) persist(op string) {
	if err := s.backend.Save(s.records); err != nil {
		s.logger.Warn("records not saved", "op", op, "error", err)
		return
	}
	s.logger.Debug("records saved", "op", op, "count", len(s.records))
}
