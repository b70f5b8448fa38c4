// Package session keeps parsed resumes in memory for the lifetime of the
// process. There is no durable storage; a restart drops all records.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/resume"
)

// ErrNotFound is returned when no record matches the requested ID.
var ErrNotFound = errors.New("resume not found")

// Record is one stored resume with its provenance.
type Record struct {
	ID        string           `json:"id"`
	Resume    resume.Canonical `json:"resume"`
	Origin    string           `json:"origin"`
	FileName  string           `json:"fileName,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Origin values for Record.
const (
	OriginUpload   = "upload"
	OriginProfile  = "profile"
	OriginImported = "imported"
)

// Store is a concurrency-safe in-memory resume store.
type Store struct {
	mu   sync.RWMutex
	data map[string]Record
	now  func() time.Time
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]Record),
		now:  time.Now,
	}
}

// Save stores a new resume and returns the created record.
func (s *Store) Save(ctx context.Context, res resume.Canonical, origin, fileName string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	now := s.now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		Resume:    res,
		Origin:    origin,
		FileName:  fileName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rec.ID] = rec
	return rec, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.data[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Update replaces the stored resume and bumps UpdatedAt.
func (s *Store) Update(ctx context.Context, id string, res resume.Canonical) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	rec.Resume = res
	rec.UpdatedAt = s.now().UTC()
	s.data[id] = rec
	return rec, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// List returns all records, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	records := make([]Record, 0, len(s.data))
	for _, rec := range s.data {
		records = append(records, rec)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}
