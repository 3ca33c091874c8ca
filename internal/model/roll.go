package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MaxRollMinutes is the longest roll a record can carry.
const MaxRollMinutes = 24 * 60

// UnmarshalJSON accepts duration as a number, a numeric string, an empty
// string or null. Journals written by the browser app stored the raw input
// text, so a value that is not a usable minute count decodes as no duration
// instead of failing the whole record.
func (r *RollRecord) UnmarshalJSON(data []byte) error {
	type plain RollRecord
	var aux struct {
		plain
		Duration json.RawMessage `json:"duration"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = RollRecord(aux.plain)
	r.DurationMinutes = parseStoredMinutes(aux.Duration)
	return nil
}

// parseStoredMinutes rounds to the nearest minute. Non-numeric, negative,
// non-finite and out-of-range values yield nil.
func parseStoredMinutes(raw json.RawMessage) *int {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v = math.Round(v)
	if v < 0 || v > MaxRollMinutes {
		return nil
	}
	minutes := int(v)
	return &minutes
}
