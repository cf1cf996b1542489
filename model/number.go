// file: model/number.go

package model

import (
	"strconv"
	"strings"
)

// Number is a JSON scalar that may arrive as a number or as a numeric string.
// It records whether the field was present at all and keeps the value exactly
// as submitted: the error messages interpolate the raw value, and the
// transaction fingerprint is computed over it.
type Number struct {
	Raw     string
	Present bool
}

// UnmarshalJSON accepts any scalar token. Parsing is deferred to Float64 so
// that an unparsable value can still be reported back to the caller verbatim.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.Present = true
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		n.Raw = unquoted
		return nil
	}
	if s == "null" {
		n.Raw = ""
		return nil
	}
	n.Raw = s
	return nil
}

// Float64 parses the submitted value as a decimal number.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(n.Raw), 64)
}

// Empty reports whether the field was absent, null, or an empty string.
func (n Number) Empty() bool {
	return !n.Present || n.Raw == ""
}
