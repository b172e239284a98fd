package validation

import (
	"bytes"
	"encoding/json"
)

// NullString is a string field that distinguishes absent, null and set.
// An empty string decodes as null.
type NullString struct {
	Value string
	Valid bool
	// Set reports whether the field appeared in the payload at all.
	Set bool
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value, n.Valid = "", false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = n.Value != ""
	return nil
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value as a nullable column value.
func (n NullString) Ptr() *string {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
