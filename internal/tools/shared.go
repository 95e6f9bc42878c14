// Package tools is the thin shell per cataloged tool: it parses loose,
// possibly-stringified input, calls the matching service, and shapes the
// result into a models.EnrichedResponse, attaching hints and classifying any
// error so nothing ever propagates past the tool call as a raw error.
package tools

import (
	"strconv"
	"strings"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/models"
)

// asString loose-converts an inbound parameter to a string. Absent or nil
// values yield "".
func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// asInt loose-converts an inbound parameter to int. Clients may send
// numerals as JSON numbers or as strings; parse failures fall back to def
// rather than erroring the call, per the tool layer's documented tolerance
// for loosely-typed RPC input.
func asInt(v any, def int) int {
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		return int(x)
	case int:
		return x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}

// asOptInt is asInt but returns nil when v is absent, so the caller can
// distinguish "not supplied" from "supplied as zero".
func asOptInt(v any) *int {
	if v == nil {
		return nil
	}
	n := asInt(v, 0)
	return &n
}

// asBool loose-converts an inbound parameter to bool. Accepts native JSON
// booleans, JSON numbers (nonzero is true), and the string forms
// "true"/"1"/"yes" and "false"/"0"/"no"/"" (case-insensitive); nil and any
// other value yield def.
func asBool(v any, def bool) bool {
	switch x := v.(type) {
	case nil:
		return def
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no", "":
			return false
		default:
			return def
		}
	default:
		return def
	}
}

// asOptBool is asBool but returns nil when v is absent.
func asOptBool(v any) *bool {
	if v == nil {
		return nil
	}
	b := asBool(v, false)
	return &b
}

// asStringSlice loose-converts an inbound parameter to []string. Accepts a
// JSON array of strings, a single string (treated as one element), or a
// comma-separated string.
func asStringSlice(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s := asString(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if x == "" {
			return nil
		}
		parts := strings.Split(x, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

// parseELI parses an ELI string, wrapping the generic parse error into the
// typed apierrors.InvalidEliError so the classification layer reports
// "validation".
func parseELI(raw string) (models.ELI, error) {
	eli, err := models.ParseELI(raw)
	if err != nil {
		return models.ELI{}, &apierrors.InvalidEliError{Eli: raw}
	}
	return eli, nil
}
