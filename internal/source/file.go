package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Makepad-fr/postview/internal/model"
)

// File reads records from a local JSON file holding the same array the
// HTTP endpoint serves. Useful offline and in tests. It never writes.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

// Path is the file this source reads.
func (f *File) Path() string { return f.path }

func (f *File) Load(ctx context.Context) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read file: %s does not exist", f.path)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var records []model.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
