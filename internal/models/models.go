// package models defines the data model for numbered lists
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ItemID is the identity of an [Item].
//
// The data source sends numeric ids; string ids are accepted as well.
type ItemID string

// UnmarshalJSON decodes a JSON string or number. null decodes to the empty id.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// MarshalJSON encodes ids that are JSON number literals as numbers so exports match the data source shape.
func (id ItemID) MarshalJSON() ([]byte, error) {
	if isNumberLiteral(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// isNumberLiteral reports whether s is exactly one JSON number, e.g. "12", "-1.5" or "1e3".
func isNumberLiteral(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return strings.TrimSpace(s) == s && json.Valid([]byte(s))
}

// Item is a single list entry. Ownership moves between lists; identity never changes.
type Item struct {
	ID          ItemID `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Record is a flat data source row.
type Record struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ListNumber  *int   `json:"list_number"`
}

// Item drops the list number.
func (r Record) Item() Item {
	return Item{ID: r.ID, Name: r.Name, Description: r.Description}
}

// NewRecord builds a [Record] for item in list n.
func NewRecord(item Item, n int) Record {
	return Record{ID: item.ID, Name: item.Name, Description: item.Description, ListNumber: &n}
}

// Side selects one of the two lists of a merge session.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// ParseSide parses "left"/"right" (or "l"/"r").
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "l":
		return SideLeft, nil
	case "right", "r":
		return SideRight, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}

// ListCollection maps a list number to its ordered items.
type ListCollection map[int][]Item

// Keys returns the list numbers in ascending order.
func (c ListCollection) Keys() []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MaxKey returns the largest list number, or 0 for an empty collection.
func (c ListCollection) MaxKey() int {
	keys := c.Keys()
	if len(keys) == 0 {
		return 0
	}
	return keys[len(keys)-1]
}

// Contains reports whether n is a list number in c.
func (c ListCollection) Contains(n int) bool {
	_, ok := c[n]
	return ok
}

// Count returns the number of items across all lists.
func (c ListCollection) Count() int {
	total := 0
	for _, items := range c {
		total += len(items)
	}
	return total
}

// Clone returns a deep copy. Items are values, so copying the slices is enough.
func (c ListCollection) Clone() ListCollection {
	if c == nil {
		return nil
	}
	out := make(ListCollection, len(c))
	for k, items := range c {
		out[k] = slices.Clone(items)
		if out[k] == nil {
			out[k] = []Item{}
		}
	}
	return out
}

// Find locates the item with the given id.
func (c ListCollection) Find(id ItemID) (Item, int, bool) {
	for _, k := range c.Keys() {
		if i := IndexOf(c[k], id); i >= 0 {
			return c[k][i], k, true
		}
	}
	return Item{}, 0, false
}

// Records flattens the collection back into data source rows, ordered by list number.
func (c ListCollection) Records() []Record {
	records := make([]Record, 0, c.Count())
	for _, k := range c.Keys() {
		for _, item := range c[k] {
			records = append(records, NewRecord(item, k))
		}
	}
	return records
}

// IndexOf returns the position of the item with the given id, or -1.
func IndexOf(items []Item, id ItemID) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}
