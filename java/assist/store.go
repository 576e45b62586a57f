// Package assist serves javamate's generation features over the
// Language Server Protocol: it tracks open documents, outlines the
// class structure of the document under the cursor, and offers code
// actions whose edits insert or replace generated boilerplate.
package assist

import "sync"

// Store keeps the current full-text snapshot of every open document.
// Documents sync whole, never incrementally: each request outlines the
// snapshot from scratch, so an edit simply replaces the text.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Update replaces the snapshot for path.
func (s *Store) Update(path, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = text
}

// Remove drops the snapshot for path.
func (s *Store) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
}

// Get returns the snapshot for path.
func (s *Store) Get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[path]
	return text, ok
}
