// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const opCoerceTime = "CoerceTime"

// Hour is one hour in seconds, the unit diffusion anneals are usually quoted in.
const Hour = 3600.0

// CoerceTime converts a loosely typed diffusion time into seconds.
// Accepted inputs: float64, float32, int, int64, uint, numeric strings
// (surrounding blanks ignored) and time.Duration.
//
// Errors:
//   - ErrInvalidTime when v has an unsupported type, does not parse, or is
//     not a positive finite number.
func CoerceTime(v any) (float64, error) {
	var t float64
	switch tv := v.(type) {
	case float64:
		t = tv
	case float32:
		t = float64(tv)
	case int:
		t = float64(tv)
	case int64:
		t = float64(tv)
	case uint:
		t = float64(tv)
	case time.Duration:
		t = tv.Seconds()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(tv), 64)
		if err != nil {
			return 0, profileErrorf(opCoerceTime, fmt.Errorf("%q: %w", tv, ErrInvalidTime))
		}
		t = f
	default:
		return 0, profileErrorf(opCoerceTime, fmt.Errorf("unsupported type %T: %w", v, ErrInvalidTime))
	}
	if err := ValidateTime(t); err != nil {
		return 0, profileErrorf(opCoerceTime, err)
	}

	return t, nil
}

// ValidateTime returns ErrInvalidTime unless t is positive and finite.
func ValidateTime(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return ErrInvalidTime
	}

	return nil
}
