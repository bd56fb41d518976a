package youtube

import (
	"regexp"
	"strconv"
)

// isoDurationPattern matches ISO-8601 durations restricted to hour, minute
// and second components (the shapes the video catalog emits)
var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts a compact ISO-8601 duration such as "PT1H2M3S"
// into total seconds. Any subset of the hour/minute/second groups may be
// absent. Malformed input yields 0, which downstream treats as an unknown
// duration rather than an error.
func ParseISODuration(iso string) int {
	m := isoDurationPattern.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
