package entity

import (
	"time"

	domainerrors "backoffice/internal/domain/errors"
)

// calendarDateLayout is the only accepted input format for report ranges.
const calendarDateLayout = "2006-01-02"

// DateRange is a resolved half-open timestamp interval
// [Start, End): Start is midnight of the first day, End is midnight of
// the day after the last day. Date arithmetic is calendar-only in UTC;
// no timezone shifting happens after parsing.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange validates two inclusive YYYY-MM-DD calendar dates and
// converts them into a half-open interval. Malformed input fails with
// ErrInvalidDateRange. A reversed range is not rejected; it resolves to
// a structurally valid interval that matches nothing.
func ResolveDateRange(fromISO, toISO string) (DateRange, error) {
	from, err := parseCalendarDate(fromISO)
	if err != nil {
		return DateRange{}, err
	}

	to, err := parseCalendarDate(toISO)
	if err != nil {
		return DateRange{}, err
	}

	return DateRange{
		Start: from,
		End:   to.AddDate(0, 0, 1),
	}, nil
}

func parseCalendarDate(value string) (time.Time, error) {
	// time.Parse alone accepts some non-canonical spellings; the length
	// check pins the input to exactly YYYY-MM-DD.
	if len(value) != len(calendarDateLayout) {
		return time.Time{}, domainerrors.ErrInvalidDateRange.WithDetails("expected YYYY-MM-DD, got " + value)
	}

	parsed, err := time.ParseInLocation(calendarDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDateRange.WithDetails("expected YYYY-MM-DD, got " + value)
	}

	return parsed, nil
}
