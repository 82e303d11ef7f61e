// Package source fetches the advocate dataset and feeds load results onto the event bus.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"advocates/internal/domain"
)

// ErrUnexpectedStatus is returned when the advocates endpoint answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected response status")

// ErrBodyTooLarge is returned when a response exceeds the source's size cap
var ErrBodyTooLarge = errors.New("response body too large")

// Source is a one-shot request/response dataset provider
type Source interface {
	Fetch(ctx context.Context) ([]domain.Advocate, error)
	// Name identifies the source in logs and status messages
	Name() string
}

// Envelope is the wire shape of GET /api/advocates
type Envelope struct {
	Data []domain.Advocate `json:"data"`
}

// Decode reads an envelope, or a bare JSON array of advocates.
// A missing or null "data" key yields an empty dataset.
func Decode(r io.Reader) ([]domain.Advocate, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read advocates: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []domain.Advocate
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode advocates: %w", err)
		}
		return normalize(list), nil
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode advocates: %w", err)
	}
	return normalize(env.Data), nil
}

func normalize(list []domain.Advocate) []domain.Advocate {
	if list == nil {
		return []domain.Advocate{}
	}
	return list
}

// FileSource reads the dataset from a JSON file on disk
type FileSource struct {
	path string
}

// NewFileSource creates a source for path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open advocates file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// StaticSource serves a fixed in-memory dataset
type StaticSource struct {
	name      string
	advocates []domain.Advocate
}

// NewStaticSource creates a source that always returns a copy of advocates
func NewStaticSource(name string, advocates []domain.Advocate) *StaticSource {
	return &StaticSource{name: name, advocates: advocates}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) Fetch(ctx context.Context) ([]domain.Advocate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return normalize(slices.Clone(s.advocates)), nil
}
