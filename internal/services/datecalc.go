package services

import (
	"fmt"
	"time"

	"github.com/sejmkit/gateway/internal/apierrors"
)

// DateCalc implements calculate_legal_date: offsetting a flexibly-parsed
// base date by days/months/years, the way a legal deadline is computed
// (e.g. "vacatio legis" periods).
type DateCalc struct{}

func NewDateCalc() *DateCalc { return &DateCalc{} }

// Do parses baseDate (accepting "YYYY", "YYYY-MM", or "YYYY-MM-DD"; the
// empty string means today) and returns (baseISODate, calculatedISODate).
func (DateCalc) Do(baseDate string, days, months, years int) (string, string, error) {
	base, err := parseFlexibleDate(baseDate)
	if err != nil {
		return "", "", err
	}

	calculated := base.AddDate(years, months, days)
	return base.Format("2006-01-02"), calculated.Format("2006-01-02"), nil
}

// parseFlexibleDate accepts "YYYY", "YYYY-MM", "YYYY-MM-DD", or the empty
// string (today), matching the original tool's lenient base-date input.
func parseFlexibleDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}

	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &apierrors.ValidationError{
		Message: fmt.Sprintf("nieprawidłowy format daty: %s. Oczekiwany: RRRR, RRRR-MM lub RRRR-MM-DD", s),
	}
}
