package activity

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Store is an append-only collection of activity records for one account.
// A mutex guards the append path so a future concurrent submission model
// keeps the at-most-one-writer discipline; reads return copies.
type Store struct {
	mu      sync.Mutex
	records []Record
	path    string
	logger  zerolog.Logger
}

// NewStore creates an empty store persisting to path. An empty path keeps
// the store in-memory only.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads previously persisted records. A missing file leaves the store
// empty without error. Entries without a usable category are skipped with a
// warning rather than failing the whole load.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading activity store %s: %w", s.path, err)
	}

	var loaded []Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing activity store %s: %w", s.path, err)
	}

	kept := loaded[:0]
	for _, rec := range loaded {
		if !rec.Category.Valid() {
			s.logger.Warn().Str("id", rec.ID).Str("category", string(rec.Category)).
				Msg("skipping activity record with unknown category")
			continue
		}
		kept = append(kept, rec)
	}

	s.mu.Lock()
	s.records = kept
	s.mu.Unlock()
	return nil
}

// Append adds one record and persists the collection. The append is
// all-or-nothing: if persisting fails the in-memory append is rolled back
// and the error returned, so no partial submission survives.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if err := s.saveLocked(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// All returns a copy of every stored record.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Reset removes every record and persists the empty collection.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.records
	s.records = nil
	if err := s.saveLocked(); err != nil {
		s.records = previous
		return err
	}
	return nil
}

// saveLocked persists the records. Callers must hold the mutex.
func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}
	records := s.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling activity store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing activity store %s: %w", s.path, err)
	}
	return nil
}
