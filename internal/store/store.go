// Package store persists diagnostic search reports, keyed by position FEN,
// in a local BadgerDB database.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Get when no report exists for a position.
var ErrNotFound = errors.New("no report stored for position")

const reportPrefix = "report:"

// Report is the persisted outcome of one search.
type Report struct {
	FEN       string        `json:"fen"`
	BestMove  string        `json:"best_move"`
	Reply     string        `json:"reply,omitempty"`
	Score     int           `json:"score"`
	Depth     int           `json:"depth"`
	Nodes     uint64        `json:"nodes"`
	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store wraps the report database.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the report store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a report, replacing any previous report for the same position.
func (s *Store) Put(r *Report) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(reportPrefix+r.FEN), data)
	})
}

// Get loads the report for a position, or ErrNotFound.
func (s *Store) Get(fen string) (*Report, error) {
	var r Report
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(reportPrefix + fen))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ForEach calls fn for every stored report. Iteration stops at the first
// error, which is returned.
func (s *Store) ForEach(fn func(*Report) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var r Report
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			if err := fn(&r); err != nil {
				return err
			}
		}
		return nil
	})
}
