package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/julianday"
)

// isoDate is the calendar date layout used by before:/after: values.
const isoDate = "2006-01-02"

// RangeSide selects which endpoint of a daterange: value an edit targets.
type RangeSide int

const (
	RangeStart RangeSide = iota
	RangeEnd
)

// JulianDay converts an ISO calendar date to the Julian day serial the
// search engine's daterange: syntax expects. The serial counts days with
// the convention floor(ms_since_epoch/86_400_000 + 2440587.5).
func JulianDay(iso string) (int64, error) {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return 0, fmt.Errorf("invalid calendar date %q: %w", iso, err)
	}
	day, _ := julianday.Date(t)
	return day, nil
}

// SetRangeEndpoint rewrites one endpoint of a stored daterange: value
// ("start-end", both Julian serials) with a newly chosen calendar date.
// While only one endpoint has been picked, the known serial is used for
// both sides so the range is never malformed mid-edit.
func SetRangeEndpoint(current string, side RangeSide, iso string) (string, error) {
	day, err := JulianDay(iso)
	if err != nil {
		return "", err
	}
	serial := fmt.Sprintf("%d", day)

	var start, end string
	if i := strings.Index(current, "-"); i >= 0 {
		start, end = current[:i], current[i+1:]
	}

	if side == RangeStart {
		start = serial
		if end == "" {
			end = serial
		}
	} else {
		end = serial
		if start == "" {
			start = serial
		}
	}
	return start + "-" + end, nil
}
