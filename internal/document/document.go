// Package document gives typed, optional access to a loosely structured JSON
// tree. A lookup never fails: it yields a Value that is either found or
// absent, and callers decide the default explicitly.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Document map[string]any

// Parse decodes a JSON object keeping numbers as json.Number so amounts are
// never routed through float64.
func Parse(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("payload is not a JSON object")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("payload has trailing data after the JSON object")
	}
	return doc, nil
}

// Lookup walks nested objects by key and arrays by decimal index.
// JSON null is reported as absent.
func (d Document) Lookup(path ...string) Value {
	var cur any = map[string]any(d)
	for _, seg := range path {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return Value{}
			}
			cur = next
		case Document:
			next, ok := node[seg]
			if !ok {
				return Value{}
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return Value{}
			}
			cur = node[i]
		default:
			return Value{}
		}
	}
	if cur == nil {
		return Value{}
	}
	return Value{raw: cur, found: true}
}

type Value struct {
	raw   any
	found bool
}

func (v Value) Found() bool { return v.found }

func (v Value) Raw() any { return v.raw }

func (v Value) String() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

func (v Value) StringOr(def string) string {
	if s, ok := v.String(); ok {
		return s
	}
	return def
}

// Text renders scalars (string, number, bool) as text. Objects and arrays are
// not text.
func (v Value) Text() (string, bool) {
	switch raw := v.raw.(type) {
	case string:
		return raw, true
	case json.Number:
		return raw.String(), true
	case float64:
		return strconv.FormatFloat(raw, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(raw), true
	}
	return "", false
}

func (v Value) TextOr(def string) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return def
}

func (v Value) Decimal() (decimal.Decimal, bool) {
	switch raw := v.raw.(type) {
	case json.Number:
		d, err := decimal.NewFromString(raw.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(raw), true
	}
	return decimal.Decimal{}, false
}

func (v Value) Object() (Document, bool) {
	switch raw := v.raw.(type) {
	case map[string]any:
		return Document(raw), true
	case Document:
		return raw, true
	}
	return nil, false
}

// ObjectID reads a plain string id or an extended JSON {"$oid": "..."}.
func (v Value) ObjectID() (string, bool) {
	if s, ok := v.Text(); ok && s != "" {
		return s, true
	}
	if obj, ok := v.Object(); ok {
		if s, ok := obj.Lookup("$oid").String(); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

var defaultLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date reads a timestamp either as a bare string or in extended JSON form:
// {"$date": "<iso>"}, {"$date": <epoch ms>} or {"$date": {"$numberLong": "<epoch ms>"}}.
// With no layouts given, ISO-8601 date-time and date-only forms are accepted.
func (v Value) Date(layouts ...string) (time.Time, bool) {
	if len(layouts) == 0 {
		layouts = defaultLayouts
	}

	if obj, ok := v.Object(); ok {
		inner := obj.Lookup("$date")
		if !inner.Found() {
			return time.Time{}, false
		}
		if n, ok := inner.Object(); ok {
			return epochMillis(n.Lookup("$numberLong"))
		}
		if _, ok := inner.raw.(string); !ok {
			return epochMillis(inner)
		}
		return inner.Date(layouts...)
	}

	s, ok := v.String()
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func epochMillis(v Value) (time.Time, bool) {
	d, ok := v.Decimal()
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(d.IntPart()).UTC(), true
}
