package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/ashitosh07/lambda/pkg/mu"
)

// DataFileStore writes entries to <dir>/<family>/<partition key>.json.
// It backs local runs where no AWS table is available.
type DataFileStore struct {
	dir string
	mu  mu.MutexByKey
}

func NewDataFileStore(dir string) *DataFileStore {
	return &DataFileStore{dir: dir}
}

func (dfs *DataFileStore) FilePath(family mapper.Family, partitionKey string) string {
	return filepath.Join(dfs.dir, string(family), url.PathEscape(partitionKey)+".json")
}

func (dfs *DataFileStore) Put(ctx context.Context, entry audit.Entry) error {
	const op = "file put"
	if err := validate(op, entry); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return failure.StoreWrite(op, err)
	}

	path := dfs.FilePath(entry.Family, entry.PartitionKey)
	l := dfs.mu.GetOrCreate(path)
	l.Lock()
	defer l.Unlock()

	payload, err := json.Marshal(entry)
	if err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to marshal data: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to create directory: %w", err))
	}

	// write then rename so readers never see a partial file
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0644); err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to write data: %w", err))
	}
	if err := os.Rename(tmp, path); err != nil {
		return failure.StoreWrite(op, fmt.Errorf("failed to write data: %w", err))
	}

	return nil
}

// Get returns the stored attributes for a partition key.
func (dfs *DataFileStore) Get(ctx context.Context, family mapper.Family, partitionKey string) (map[string]string, error) {
	path := dfs.FilePath(family, partitionKey)
	l := dfs.mu.GetOrCreate(path)
	l.RLock()
	defer l.RUnlock()

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var item map[string]string
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, err
	}

	return item, nil
}
