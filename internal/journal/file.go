package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tally-ledger/tally/internal/model"
)

// File persists records to a single text file, one record per line.
type File struct {
	Path string
}

// NewFile creates a File backend for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads all records from the file. A missing file is an empty ledger.
func (f *File) Load() ([]model.Record, error) {
	fh, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening records %s: %w", f.Path, err)
	}
	defer fh.Close()

	records, err := ReadRecords(fh)
	if err != nil {
		return nil, fmt.Errorf("reading records %s: %w", f.Path, err)
	}
	return records, nil
}

// Save replaces the file's contents with records.
func (f *File) Save(records []model.Record) error {
	fh, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("creating records %s: %w", f.Path, err)
	}

	if err := WriteRecords(fh, records); err != nil {
		fh.Close()
		return fmt.Errorf("writing records %s: %w", f.Path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing records %s: %w", f.Path, err)
	}
	return nil
}
