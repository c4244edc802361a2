// Copyright © 2021 Io FinNet Group, Inc.

package int

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON writes z as a bare JSON number of any size.
func (z *Int) MarshalJSON() ([]byte, error) {
	if z == nil {
		return []byte("null"), nil
	}
	return []byte(z.String()), nil
}

// UnmarshalJSON accepts a JSON number of any size, or a string holding an integer
// literal ("123", "0x7b", "0b1111011").
func (z *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	base := 10
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b, base = []byte(s), 0
	}
	if _, ok := z.SetString(string(b), base); !ok {
		return fmt.Errorf("int: cannot unmarshal %q into an integer", b)
	}
	return nil
}
