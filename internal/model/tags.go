package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// Tags is an ordered tag list stored as a JSON array in a text column.
// Scanning never fails: NULL or malformed text yields an empty list.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		*t = Tags{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		*t = Tags{}
		return nil
	}
	*t = out
	return nil
}
