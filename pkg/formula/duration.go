package formula

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"Maltio-Backend/domain"
)

var durationPattern = regexp.MustCompile(`(\d*\.?\d+)\s*([a-zA-Z]*)`)

// minutesPerUnit maps a time suffix to its length in minutes.
var minutesPerUnit = map[string]float64{
	"d":       1440,
	"day":     1440,
	"days":    1440,
	"h":       60,
	"hr":      60,
	"hrs":     60,
	"hour":    60,
	"hours":   60,
	"m":       1,
	"min":     1,
	"mins":    1,
	"minute":  1,
	"minutes": 1,
	"s":       1.0 / 60,
	"sec":     1.0 / 60,
	"secs":    1.0 / 60,
	"second":  1.0 / 60,
	"seconds": 1.0 / 60,
}

// ParseDuration converts a spice time such as "60", "1 hr" or "7 days" to
// minutes. A missing or unknown suffix means the number is already minutes.
func ParseDuration(value string) (float64, error) {
	m := durationPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, value)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, value)
	}

	if factor, ok := minutesPerUnit[strings.ToLower(m[2])]; ok {
		return n * factor, nil
	}
	return n, nil
}
