package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/spotdl/internal/shared"
)

// ParseDuration converts a "minutes:seconds" duration string to milliseconds.
//
// The input carries no hours segment and no fractional seconds; both parts
// must parse as non-negative integers. No bounds check is applied to the
// seconds value.
func ParseDuration(text string) (int64, error) {
	mins, secs, found := strings.Cut(text, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", shared.ErrBadDuration, text)
	}

	m, err := strconv.ParseInt(mins, 10, 64)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("%w: %q", shared.ErrBadDuration, text)
	}

	s, err := strconv.ParseInt(secs, 10, 64)
	if err != nil || s < 0 {
		return 0, fmt.Errorf("%w: %q", shared.ErrBadDuration, text)
	}

	return (m*60 + s) * 1000, nil
}
