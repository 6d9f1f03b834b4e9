package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashitosh07/lambda/internal/mapper"
)

func TestDataFileStore_FilePath(t *testing.T) {
	tests := []struct {
		name         string
		partitionKey string
		expected     string
	}{
		{
			name:         "success - simple key",
			partitionKey: "user123",
			expected:     filepath.Join("tmp", "product", "user123.json"),
		},
		{
			name:         "success - key with slash is escaped",
			partitionKey: "../etc/passwd",
			expected:     filepath.Join("tmp", "product", "..%2Fetc%2Fpasswd.json"),
		},
	}

	dfs := NewDataFileStore("tmp")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dfs.FilePath(mapper.FamilyProduct, tt.partitionKey)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDataFileStore_Put(t *testing.T) {
	tests := []struct {
		name          string
		partitionKey  string
		setup         func(t *testing.T, dfs *DataFileStore)
		expectedError bool
	}{
		{
			name:         "success - put new entry",
			partitionKey: "shard-pk-1",
			setup:        func(t *testing.T, dfs *DataFileStore) {},
		},
		{
			name:         "success - overwrite existing entry",
			partitionKey: "shard-pk-2",
			setup: func(t *testing.T, dfs *DataFileStore) {
				path := dfs.FilePath(mapper.FamilyProduct, "shard-pk-2")
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatalf("failed to create dir: %v", err)
				}
				if err := os.WriteFile(path, []byte(`{"PartitionKey":"shard-pk-2","stale":"yes"}`), 0644); err != nil {
					t.Fatalf("failed to write file: %v", err)
				}
			},
		},
		{
			name:          "error - empty partition key",
			partitionKey:  "",
			setup:         func(t *testing.T, dfs *DataFileStore) {},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dfs := NewDataFileStore(t.TempDir())
			tt.setup(t, dfs)

			err := dfs.Put(context.Background(), newTestEntry(t, tt.partitionKey))

			if tt.expectedError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			item, err := dfs.Get(context.Background(), mapper.FamilyProduct, tt.partitionKey)
			if err != nil {
				t.Fatalf("failed to read back entry: %v", err)
			}
			if item["PartitionKey"] != tt.partitionKey {
				t.Errorf("expected partition key %q, got %q", tt.partitionKey, item["PartitionKey"])
			}
			if _, ok := item["stale"]; ok {
				t.Error("expected overwrite without merge")
			}
			if item["Subproduct"] != "wire" {
				t.Errorf("expected canonical field, got %q", item["Subproduct"])
			}
		})
	}
}

func TestDataFileStore_PutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDataFileStore(t.TempDir()).Put(ctx, newTestEntry(t, "pk"))
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}
