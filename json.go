package fa

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the json.Marshaler interface. The set is encoded as
// an ascending array of ids.
func (s StateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal([]StateID(s.Sorted()))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *StateSet) UnmarshalJSON(data []byte) error {
	var ids []StateID
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("failed to unmarshal state set: %w", err)
	}

	*s = NewStateSet(ids...)

	return nil
}

// MarshalJSON implements the json.Marshaler interface. Epsilon is encoded as "ε".
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface using ParseSymbol.
func (s *Symbol) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("failed to unmarshal symbol: %w", err)
	}

	sym, err := ParseSymbol(text)
	if err != nil {
		return err
	}

	*s = sym

	return nil
}
