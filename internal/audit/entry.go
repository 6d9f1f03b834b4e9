package audit

import (
	"encoding/json"
	"fmt"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/google/uuid"
)

const (
	AttrPartitionKey = "PartitionKey"
	AttrID           = "id"
	AttrUserID       = "user_id"
)

// Identity is the id/user_id pair stored next to the canonical record.
type Identity struct {
	ID     string
	UserID string
}

// ResolveIdentity reuses the source document's _id and userId and only
// generates the values the document does not carry.
func ResolveIdentity(doc document.Document) Identity {
	id, ok := doc.Lookup("_id").ObjectID()
	if !ok {
		id = uuid.NewString()
	}
	userID, ok := doc.Lookup("userId").ObjectID()
	if !ok {
		userID = uuid.NewString()
	}
	return Identity{ID: id, UserID: userID}
}

// Entry is the audit copy of one canonical record.
type Entry struct {
	PartitionKey string
	Family       mapper.Family
	Identity     Identity
	Record       mapper.Record
}

func NewEntry(partitionKey string, identity Identity, rec mapper.Record) Entry {
	return Entry{
		PartitionKey: partitionKey,
		Family:       rec.Family(),
		Identity:     identity,
		Record:       rec,
	}
}

func (e Entry) Validate() error {
	if e.PartitionKey == "" {
		return fmt.Errorf("field %s is required", AttrPartitionKey)
	}
	if e.Record == nil {
		return fmt.Errorf("record is required")
	}
	return nil
}

// Item flattens the entry into string attributes. PartitionKey, id and
// user_id always win over a canonical field of the same name.
func (e Entry) Item() map[string]string {
	attrs := e.Record.Attributes()
	item := make(map[string]string, len(attrs)+3)
	for _, a := range attrs {
		item[a.Name] = a.Value
	}
	item[AttrID] = e.Identity.ID
	item[AttrUserID] = e.Identity.UserID
	item[AttrPartitionKey] = e.PartitionKey
	return item
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Item())
}
