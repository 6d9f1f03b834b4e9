package audit

import (
	"encoding/json"
	"testing"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/google/uuid"
)

func mustDoc(t *testing.T, payload string) document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(payload))
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}

func TestResolveIdentity(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		expectedID     string
		expectedUserID string
	}{
		{
			name:           "success - both present",
			payload:        `{"_id":"abc","userId":"u-1"}`,
			expectedID:     "abc",
			expectedUserID: "u-1",
		},
		{
			name:           "success - object id",
			payload:        `{"_id":{"$oid":"64f0"},"userId":"u-1"}`,
			expectedID:     "64f0",
			expectedUserID: "u-1",
		},
		{
			name:    "success - both generated",
			payload: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := ResolveIdentity(mustDoc(t, tt.payload))
			second := ResolveIdentity(mustDoc(t, tt.payload))

			if tt.expectedID != "" {
				if first.ID != tt.expectedID || second.ID != tt.expectedID {
					t.Errorf("expected id %q, got %q and %q", tt.expectedID, first.ID, second.ID)
				}
				if first.UserID != tt.expectedUserID {
					t.Errorf("expected user id %q, got %q", tt.expectedUserID, first.UserID)
				}
				return
			}

			if _, err := uuid.Parse(first.ID); err != nil {
				t.Errorf("expected generated uuid id, got %q", first.ID)
			}
			if first.ID == second.ID || first.UserID == second.UserID {
				t.Error("expected fresh identities on every run when the source has none")
			}
		})
	}
}

func TestEntry_Item(t *testing.T) {
	rec, err := mapper.MapProduct(mustDoc(t, `{"document_number":"123"}`))
	if err != nil {
		t.Fatalf("failed to map: %v", err)
	}

	entry := NewEntry("shard-pk-1", Identity{ID: "id-1", UserID: "user-1"}, rec)
	item := entry.Item()

	if item[AttrPartitionKey] != "shard-pk-1" {
		t.Errorf("expected partition key from stream, got %q", item[AttrPartitionKey])
	}
	if item[AttrID] != "id-1" || item[AttrUserID] != "user-1" {
		t.Errorf("unexpected identity %q / %q", item[AttrID], item[AttrUserID])
	}
	if item["IdentificationNumber"] != "123" {
		t.Errorf("expected canonical field copied, got %q", item["IdentificationNumber"])
	}
	if len(item) != len(rec.Attributes())+3 {
		t.Errorf("expected %d attributes, got %d", len(rec.Attributes())+3, len(item))
	}
	if entry.Family != mapper.FamilyProduct {
		t.Errorf("expected family product, got %q", entry.Family)
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("failed to marshal entry: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("failed to unmarshal entry: %v", err)
	}
	if decoded[AttrPartitionKey] != "shard-pk-1" {
		t.Errorf("expected partition key in json, got %q", decoded[AttrPartitionKey])
	}
}

func TestEntry_Validate(t *testing.T) {
	rec, _ := mapper.MapProduct(mustDoc(t, `{}`))

	if err := NewEntry("pk", Identity{}, rec).Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := NewEntry("", Identity{}, rec).Validate(); err == nil {
		t.Error("expected error for empty partition key")
	}
	if err := (Entry{PartitionKey: "pk"}).Validate(); err == nil {
		t.Error("expected error for missing record")
	}
}
