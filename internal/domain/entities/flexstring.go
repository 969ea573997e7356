package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString is an identifier that clients may send as a JSON string or number.
// Numbers are kept in their shortest decimal form, so 42 and "42" compare equal.
type FlexString string

// UnmarshalJSON accepts strings and numbers. null leaves the value empty.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*s = FlexString(FormatAnswer(num))
	return nil
}

// String returns the normalized identifier
func (s FlexString) String() string {
	return string(s)
}
