package config

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Switch is an on/off setting that remembers whether it was set at all.
// A plain bool cannot express "off" while merging, because mergo treats
// false as unset and keeps the earlier value.
//
// It implements flag.Value (as a boolean flag), encoding.TextUnmarshaler for
// caarlos0/env and json.Unmarshaler for the JSON file.
type Switch string

const (
	SwitchOn  Switch = "on"
	SwitchOff Switch = "off"
)

// Enabled reports whether the switch is on. An unset switch is off.
func (s Switch) Enabled() bool {
	return s == SwitchOn
}

// String implements flag.Value.
func (s *Switch) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Set implements flag.Value. It accepts everything strconv.ParseBool does
// plus "on" and "off".
func (s *Switch) Set(v string) error {
	switch v {
	case string(SwitchOn):
		*s = SwitchOn
		return nil
	case string(SwitchOff):
		*s = SwitchOff
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid switch value %q: %w", v, err)
	}
	if b {
		*s = SwitchOn
	} else {
		*s = SwitchOff
	}
	return nil
}

// IsBoolFlag lets "-seed" be passed without a value.
func (s *Switch) IsBoolFlag() bool {
	return true
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Switch) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// UnmarshalJSON accepts a JSON boolean or a string.
func (s *Switch) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case bool:
		return s.Set(strconv.FormatBool(value))
	case string:
		return s.Set(value)
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid switch value %s", string(b))
	}
}

// MarshalJSON writes the switch as a JSON boolean, or null when unset.
func (s Switch) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s.Enabled())
}
