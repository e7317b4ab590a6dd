package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"medusa/internal/chore"
)

// DefaultIndent is the pretty-print indent used when writing the chore file.
const DefaultIndent = 4

// ChoreRepo reads and writes the whole chore list as one JSON document.
type ChoreRepo struct {
	fs     afero.Fs
	path   string
	indent int
}

func NewChoreRepo(fs afero.Fs, path string, indent int) *ChoreRepo {
	if indent < 0 {
		indent = DefaultIndent
	}
	return &ChoreRepo{fs: fs, path: path, indent: indent}
}

func (r *ChoreRepo) Path() string { return r.path }

// Load reads every chore in file order. Malformed files return a
// *chore.LoadError; records with unusable values return a
// *chore.InvalidConfigurationError.
func (r *ChoreRepo) Load(ctx context.Context) ([]chore.Chore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, &chore.LoadError{Path: r.path, Index: -1, Err: err}
	}
	return decodeChores(r.path, data)
}

// Save overwrites the file with the full chore list.
func (r *ChoreRepo) Save(ctx context.Context, chores []chore.Chore) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := r.encode(chores)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(r.fs, r.path, data, 0o644); err != nil {
		return fmt.Errorf("chore save: %w", err)
	}
	return nil
}

func (r *ChoreRepo) encode(chores []chore.Chore) ([]byte, error) {
	recs := make([]record, 0, len(chores))
	for _, c := range chores {
		recs = append(recs, encodeChore(c))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", r.indent))
	if err := enc.Encode(recs); err != nil {
		return nil, fmt.Errorf("chore encode: %w", err)
	}
	return buf.Bytes(), nil
}
