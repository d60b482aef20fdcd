package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists each collection as a JSON array in its own file under
// a data directory. Every mutation is a whole-file read-modify-write guarded
// by a single store-wide mutex, which also makes the checkout sequence
// (stock decrement, order append, cart clear) safe within one process.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// Collection file names.
const (
	usersFile    = "users.json"
	productsFile = "products.json"
	cartsFile    = "carts.json"
	ordersFile   = "orders.json"
)

// NewFileStore creates the data directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// read unmarshals a collection file into out. A missing file is an empty
// collection, not an error.
func (s *FileStore) read(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// write marshals a collection and replaces its file via rename, so a crash
// mid-write never leaves a truncated collection behind.
func (s *FileStore) write(name string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
