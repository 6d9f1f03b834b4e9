// Package mapper turns a change-stream post-image into the canonical record
// of one entity family. Each family declares its own schema and per-field
// defaults; the output always carries every field of the schema.
package mapper

import (
	"fmt"
	"strings"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/google/uuid"
)

type Family string

const (
	FamilyProduct     Family = "product"
	FamilyClient      Family = "client"
	FamilyTransaction Family = "transaction"
)

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "product", "products":
		return FamilyProduct, nil
	case "client", "clients", "user", "users":
		return FamilyClient, nil
	case "transaction", "transactions":
		return FamilyTransaction, nil
	}
	return "", fmt.Errorf("unknown entity family %q", s)
}

// Record is a canonical output document. Implementations marshal to the
// JSON body sent upstream.
type Record interface {
	Family() Family
	// Attributes lists every canonical field rendered as text, in schema order.
	Attributes() []Attribute
}

type Attribute struct {
	Name  string
	Value string
}

type Mapper interface {
	Map(doc document.Document) (Record, error)
}

type MapperFunc func(doc document.Document) (Record, error)

func (f MapperFunc) Map(doc document.Document) (Record, error) {
	return f(doc)
}

func For(family Family) (Mapper, error) {
	switch family {
	case FamilyProduct:
		return MapperFunc(MapProduct), nil
	case FamilyClient:
		return MapperFunc(MapClient), nil
	case FamilyTransaction:
		return &TransactionMapper{NewCode: uuid.NewString}, nil
	}
	return nil, fmt.Errorf("unknown entity family %q", family)
}

func requireDocument(family Family, doc document.Document) error {
	if doc == nil {
		return failure.Mapping("map "+string(family), fmt.Errorf("change event has no fullDocument"))
	}
	return nil
}
