package models

import (
	"fmt"
	"strconv"
	"strings"
)

const upstreamELIMarker = "api.sejm.gov.pl/eli/"

// ELI is the canonical {publisher}/{year}/{pos} identifier of a legal act.
type ELI struct {
	Publisher string
	Year      int
	Pos       int
}

// String renders the canonical "{publisher}/{year}/{pos}" form.
func (e ELI) String() string {
	return fmt.Sprintf("%s/%d/%d", e.Publisher, e.Year, e.Pos)
}

// ParseELI accepts a bare "{pub}/{year}/{pos}", tolerates a trailing slash,
// and strips the "api.sejm.gov.pl/eli/" URL prefix when present. Any other
// absolute URL is rejected. Exactly three '/'-separated parts are required,
// with integer year and pos.
func ParseELI(raw string) (ELI, error) {
	s := raw
	if idx := strings.Index(s, upstreamELIMarker); idx >= 0 {
		s = s[idx+len(upstreamELIMarker):]
	} else if strings.HasPrefix(s, "http") {
		return ELI{}, fmt.Errorf("invalid ELI URL format: %s", raw)
	}

	s = strings.TrimRight(s, "/")
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ELI{}, fmt.Errorf("invalid ELI format: %s. Expected format: PUBLISHER/YEAR/POS", s)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return ELI{}, fmt.Errorf("invalid year or position in ELI: %s", s)
	}
	pos, err := strconv.Atoi(parts[2])
	if err != nil {
		return ELI{}, fmt.Errorf("invalid year or position in ELI: %s", s)
	}

	return ELI{Publisher: parts[0], Year: year, Pos: pos}, nil
}
