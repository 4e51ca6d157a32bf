// ABOUTME: Badger key-value storage backend for arista records.
// ABOUTME: Stores JSON values under user:, exercise:, and sleep: key prefixes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
)

const (
	UserPrefix     = "user:"
	ExercisePrefix = "exercise:"
	SleepPrefix    = "sleep:"
)

// KVStore is a Store backed by an embedded Badger database.
type KVStore struct {
	db  *badger.DB
	dir string
	mu  sync.RWMutex
}

// Compile-time check that KVStore implements Store.
var _ Store = (*KVStore)(nil)

// OpenKV opens or creates a Badger database in dir.
// Badger's internal logging is routed to logger; nil silences it.
func OpenKV(dir string, logger *log.Logger) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(badgerLogger(logger))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &KVStore{db: db, dir: dir}, nil
}

// OpenKVMemory opens a Badger database that lives only in memory.
func OpenKVMemory() (*KVStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Dir returns the directory holding the database, empty for in-memory stores.
func (s *KVStore) Dir() string {
	return s.dir
}

// Close closes the Badger database.
func (s *KVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateUser stores a new user.
func (s *KVStore) CreateUser(u *UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(UserPrefix + u.ID)
		if ok, err := keyExists(txn, key); err != nil {
			return err
		} else if ok {
			return ErrConflict
		}
		return putJSON(txn, key, u)
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FirstUser returns the user with the lowest id.
func (s *KVStore) FirstUser() (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u *UserRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(UserPrefix)
		it.Seek(prefix)
		if !it.ValidForPrefix(prefix) {
			return ErrNotFound
		}
		u = &UserRecord{}
		return it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, u)
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("first user: %w", err)
	}
	return u, nil
}

// CreateExercise stores a new exercise linked to an existing user.
func (s *KVStore) CreateExercise(e *ExerciseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return createLinked(txn, e.UserID, []byte(ExercisePrefix+e.ID), e)
	})
	if err != nil {
		return fmt.Errorf("create exercise %s: %w", e.ID, err)
	}
	return nil
}

// ListExercises returns all exercises, most recent StartDate first.
func (s *KVStore) ListExercises() ([]*ExerciseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercises := []*ExerciseRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, ExercisePrefix, func(val []byte) error {
			var e ExerciseRecord
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			exercises = append(exercises, &e)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	sort.SliceStable(exercises, func(i, j int) bool {
		a, b := exercises[i], exercises[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.After(b.StartDate)
		}
		return a.ID < b.ID
	})
	return exercises, nil
}

// GetExercise retrieves the exercise with exactly this id.
func (s *KVStore) GetExercise(id string) (*ExerciseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e ExerciseRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, []byte(ExercisePrefix+id), &e)
	})
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}
	return &e, nil
}

// DeleteExercise removes the exercise with exactly this id.
func (s *KVStore) DeleteExercise(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return deleteKey(txn, []byte(ExercisePrefix+id))
	})
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", id, err)
	}
	return nil
}

// CreateSleep stores a new sleep session linked to an existing user.
func (s *KVStore) CreateSleep(r *SleepRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return createLinked(txn, r.UserID, []byte(SleepPrefix+r.ID), r)
	})
	if err != nil {
		return fmt.Errorf("create sleep %s: %w", r.ID, err)
	}
	return nil
}

// ListSleeps returns all sleep sessions, most recent StartDate first.
func (s *KVStore) ListSleeps() ([]*SleepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sleeps := []*SleepRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, SleepPrefix, func(val []byte) error {
			var r SleepRecord
			if err := json.Unmarshal(val, &r); err != nil {
				return err
			}
			sleeps = append(sleeps, &r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list sleeps: %w", err)
	}

	sort.SliceStable(sleeps, func(i, j int) bool {
		a, b := sleeps[i], sleeps[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.After(b.StartDate)
		}
		return a.ID < b.ID
	})
	return sleeps, nil
}

// GetSleep retrieves the sleep session with exactly this id.
func (s *KVStore) GetSleep(id string) (*SleepRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r SleepRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, []byte(SleepPrefix+id), &r)
	})
	if err != nil {
		return nil, fmt.Errorf("get sleep %s: %w", id, err)
	}
	return &r, nil
}

// DeleteSleep removes the sleep session with exactly this id.
func (s *KVStore) DeleteSleep(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return deleteKey(txn, []byte(SleepPrefix+id))
	})
	if err != nil {
		return fmt.Errorf("delete sleep %s: %w", id, err)
	}
	return nil
}

// Counts returns the number of stored records of each type.
func (s *KVStore) Counts() (Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Counts
	err := s.db.View(func(txn *badger.Txn) error {
		for prefix, n := range map[string]*int{
			UserPrefix:     &c.Users,
			ExercisePrefix: &c.Exercises,
			SleepPrefix:    &c.Sleeps,
		} {
			opts := badger.DefaultIteratorOptions
			opts.PrefetchValues = false
			opts.Prefix = []byte(prefix)
			it := txn.NewIterator(opts)
			for it.Rewind(); it.Valid(); it.Next() {
				*n++
			}
			it.Close()
		}
		return nil
	})
	if err != nil {
		return Counts{}, fmt.Errorf("count records: %w", err)
	}
	return c, nil
}

func createLinked(txn *badger.Txn, userID string, key []byte, v any) error {
	ok, err := keyExists(txn, []byte(UserPrefix+userID))
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserMissing
	}
	taken, err := keyExists(txn, key)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	return putJSON(txn, key, v)
}

func keyExists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func putJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return txn.Set(key, data)
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func deleteKey(txn *badger.Txn, key []byte) error {
	ok, err := keyExists(txn, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return txn.Delete(key)
}

func scanPrefix(txn *badger.Txn, prefix string, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

// kvLogger adapts a charm logger to badger.Logger.
type kvLogger struct {
	l *log.Logger
}

func badgerLogger(l *log.Logger) badger.Logger {
	if l == nil {
		return nil
	}
	return &kvLogger{l: l.WithPrefix("badger")}
}

func (k *kvLogger) Errorf(format string, args ...interface{})   { k.l.Errorf(format, args...) }
func (k *kvLogger) Warningf(format string, args ...interface{}) { k.l.Warnf(format, args...) }
func (k *kvLogger) Infof(format string, args ...interface{})    { k.l.Debugf(format, args...) }
func (k *kvLogger) Debugf(format string, args ...interface{})   { k.l.Debugf(format, args...) }
