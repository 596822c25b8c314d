package quoting

import (
	"fmt"
	"regexp"
	"strconv"
)

var osNumberPattern = regexp.MustCompile(`^OS-(\d{4})-(\d{4})$`)

// FormatOSNumber renders a document number as OS-<year>-<seq zero-padded to 4>.
// Sequences above 9999 are written in full and no longer parse back.
func FormatOSNumber(sequence, year int) string {
	return fmt.Sprintf("OS-%04d-%04d", year, sequence)
}

// ParseOSNumber extracts year and sequence from an exact OS-YYYY-NNNN string.
// Anything else reports ok=false.
func ParseOSNumber(s string) (year, sequence int, ok bool) {
	m := osNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	sequence, _ = strconv.Atoi(m[2])
	return year, sequence, true
}
