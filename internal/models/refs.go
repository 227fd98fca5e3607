package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Ref points at another document. The backend sends either the bare id or the
// populated document; both decode into Ref.
type Ref struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts a string id, a populated object or null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	var doc struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode reference: %w", err)
	}
	*r = Ref{ID: firstNonEmpty(doc.MongoID, doc.ID), Name: doc.Name, Email: doc.Email}
	return nil
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

// FlexString decodes JSON strings and numbers alike, e.g. a semester sent as 3 or "3".
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*f = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode flexible string: %w", err)
		}
		*f = FlexString(n.String())
	}
	return nil
}

// String returns the raw value.
func (f FlexString) String() string {
	return string(f)
}

// Int parses the value as an integer, returning 0 when it is not numeric.
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
