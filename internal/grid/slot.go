package grid

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Slot is an optional integer: either null or a value.
type Slot struct {
	v  int
	ok bool
}

// None is the null slot.
var None = Slot{}

// Some returns a set slot holding v.
func Some(v int) Slot {
	return Slot{v: v, ok: true}
}

// Get returns the value and whether it is set.
func (s Slot) Get() (int, bool) {
	return s.v, s.ok
}

// Valid reports whether the slot is set.
func (s Slot) Valid() bool {
	return s.ok
}

// Value returns the value, or 0 when null.
func (s Slot) Value() int {
	if !s.ok {
		return 0
	}
	return s.v
}

// Is reports whether the slot is set to v.
func (s Slot) Is(v int) bool {
	return s.ok && s.v == v
}

// String returns the value or "null".
func (s Slot) String() string {
	if !s.ok {
		return "null"
	}
	return strconv.Itoa(s.v)
}

// MarshalJSON encodes a null slot as null.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(s.v)), nil
}

// UnmarshalJSON decodes null or an integer.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = None
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Some(v)
	return nil
}
