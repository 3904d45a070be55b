package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tally-ledger/tally/internal/model"
	"github.com/tally-ledger/tally/internal/report"
)

const noSelection = -1

// State is a snapshot of the selection and edit flags.
type State struct {
	Selected     int // 0-based; meaningful only when HasSelection
	HasSelection bool
	Editing      bool
}

// Engine is the ledger as seen by a boundary layer: the store plus at most
// one selected record and an edit-mode flag.
type Engine struct {
	store    *Store
	now      func() time.Time
	selected int
	editing  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to default missing dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger for persistence warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.store.logger = logger
		}
	}
}

// Open creates an Engine and loads the backend's records. Unreadable
// storage yields an empty ledger, never an error.
func Open(backend Backend, opts ...Option) *Engine {
	e := &Engine{
		store:    NewStore(backend, nil),
		now:      time.Now,
		selected: noSelection,
	}
	for _, opt := range opts {
		opt(e)
	}
	_ = e.store.Reload()
	return e
}

// List returns the records with their current ordinals.
func (e *Engine) List() []model.Entry {
	return e.store.List()
}

// Report aggregates the current records.
func (e *Engine) Report() report.Report {
	return report.Aggregate(e.store.records)
}

// State returns the selection and edit flags.
func (e *Engine) State() State {
	st := State{Selected: e.selected, Editing: e.editing}
	if e.store.valid(e.selected) {
		st.HasSelection = true
	} else {
		st.Selected = noSelection
	}
	return st
}

// Add builds a record from in and appends it. It clears the selection.
func (e *Engine) Add(in model.Input) (int, error) {
	if e.editing {
		return 0, fmt.Errorf("add: %w", ErrEditInProgress)
	}
	ordinal := e.store.Add(model.NewRecord(in, e.now()))
	e.selected = noSelection
	return ordinal, nil
}

// Update replaces the record at index with one built from in.
func (e *Engine) Update(index int, in model.Input) error {
	return e.store.Update(index, model.NewRecord(in, e.now()))
}

// Delete removes the record at index and clears the selection.
func (e *Engine) Delete(index int) error {
	if e.editing {
		return fmt.Errorf("delete: %w", ErrEditInProgress)
	}
	if err := e.store.Delete(index); err != nil {
		return err
	}
	e.selected = noSelection
	return nil
}

// Select marks the record at index as selected. An out-of-range index
// clears the selection and returns ErrInvalidIndex.
func (e *Engine) Select(index int) error {
	if e.editing {
		return fmt.Errorf("select: %w", ErrEditInProgress)
	}
	if !e.store.valid(index) {
		e.selected = noSelection
		return fmt.Errorf("select %d of %d: %w", index, e.store.Len(), ErrInvalidIndex)
	}
	e.selected = index
	return nil
}

// ClearSelection drops the selection.
func (e *Engine) ClearSelection() {
	if e.editing {
		return
	}
	e.selected = noSelection
}

// Selected returns the selected record.
func (e *Engine) Selected() (model.Record, error) {
	if e.selected == noSelection {
		return model.Record{}, fmt.Errorf("no selection: %w", ErrInvalidIndex)
	}
	return e.store.Get(e.selected)
}

// BeginEdit enters edit mode on the selected record and returns its
// current values as the edit buffer.
func (e *Engine) BeginEdit() (model.Input, error) {
	rec, err := e.Selected()
	if err != nil {
		return model.Input{}, fmt.Errorf("begin edit: %w", err)
	}
	e.editing = true
	return rec.Input(), nil
}

// CommitEdit writes in over the selected record and leaves edit mode. If
// the selection went stale the edit stays open so it can be cancelled.
func (e *Engine) CommitEdit(in model.Input) error {
	if !e.editing {
		return fmt.Errorf("commit edit: %w", ErrNotEditing)
	}
	if e.selected == noSelection {
		return fmt.Errorf("commit edit: no selection: %w", ErrInvalidIndex)
	}
	if err := e.Update(e.selected, in); err != nil {
		return fmt.Errorf("commit edit: %w", err)
	}
	e.editing = false
	return nil
}

// CancelEdit leaves edit mode without touching the ledger.
func (e *Engine) CancelEdit() {
	e.editing = false
}
