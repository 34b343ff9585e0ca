package models

import (
	"encoding/json"
	"fmt"
)

// Specifications is product technical data stored as free-form JSON by the
// admin panel. It is resolved into one of two shapes at ingestion time:
// a plain text blob, or a key/value table. Exactly one of Text and Values
// is set.
type Specifications struct {
	Text   string
	Values map[string]string
}

func (s *Specifications) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		s.Values = nil
		return nil
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err == nil {
		s.Text = ""
		s.Values = values
		return nil
	}

	// Anything else (arrays, nested objects) is kept verbatim as text so
	// the admin panel never loses what was stored.
	s.Text = string(data)
	s.Values = nil
	return nil
}

func (s Specifications) MarshalJSON() ([]byte, error) {
	if s.Values != nil {
		return json.Marshal(s.Values)
	}
	return json.Marshal(s.Text)
}

func (s Specifications) String() string {
	if s.Values != nil {
		return fmt.Sprintf("%d attributes", len(s.Values))
	}
	return s.Text
}
