package blobstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Blob one stored transient file
type Blob struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store is the in-memory transient file store behind document uploads.
// A handle is exclusively owned by whoever received it from Put and must
// be released exactly once; a second release reports ErrHandleNotFound.
type Store struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

// NewStore creates an empty blob store
func NewStore() *Store {
	return &Store{blobs: make(map[string]Blob)}
}

// Put stores a payload and returns its newly issued handle
func (s *Store) Put(_ context.Context, name, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPayload
	}
	handle := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[handle] = Blob{Name: name, ContentType: contentType, Data: data}
	return handle, nil
}

// Get returns the blob for a live handle
func (s *Store) Get(_ context.Context, handle string) (Blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[handle]
	if !ok {
		return Blob{}, ErrHandleNotFound
	}
	return b, nil
}

// Release frees a handle. Releasing an unknown or already-released handle
// is an error so double releases surface in tests instead of hiding.
func (s *Store) Release(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[handle]; !ok {
		return ErrHandleNotFound
	}
	delete(s.blobs, handle)
	return nil
}

// Len returns the number of live handles
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
