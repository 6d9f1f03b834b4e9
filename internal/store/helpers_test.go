package store

import (
	"testing"

	"github.com/ashitosh07/lambda/internal/audit"
	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/mapper"
)

func newTestEntry(t *testing.T, partitionKey string) audit.Entry {
	t.Helper()
	doc, err := document.Parse([]byte(`{"document_number":"123","details":{"sendInfo":{"send":"wire"}}}`))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	rec, err := mapper.MapProduct(doc)
	if err != nil {
		t.Fatalf("failed to map document: %v", err)
	}
	return audit.NewEntry(partitionKey, audit.Identity{ID: "id-1", UserID: "user-1"}, rec)
}
