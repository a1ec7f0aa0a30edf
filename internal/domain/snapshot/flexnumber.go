package snapshot

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexNumber unmarshals the way the quoting forms always coerced
// numbers: a JSON number is taken as-is, a numeric string is parsed,
// anything else (null, blank, garbage) becomes 0. It never fails, so a
// snapshot with a mangled numeric field still loads.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = flexNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = flexNumber(f)
			return nil
		}
	}
	*n = 0
	return nil
}
