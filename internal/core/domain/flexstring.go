package domain

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes from either a JSON string or a JSON number. The
// validation service emits numeric request identifiers and GPA values;
// the client treats both as opaque text.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// Numbers keep their literal form.
	*f = FlexString(data)
	return nil
}

// MarshalJSON implements json.Marshaler. Values always encode as
// strings.
func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string {
	return string(f)
}
