// Package apierrors defines the typed error values raised across the
// sejmapi/docstore/resultstore/services/tools layers so the tool layer can
// classify them uniformly without coupling to those packages' internals.
package apierrors

import "fmt"

// ActNotFoundError indicates the upstream returned 404 for an act lookup.
type ActNotFoundError struct {
	Eli string
}

func (e *ActNotFoundError) Error() string {
	return fmt.Sprintf("Nie znaleziono aktu: %s", e.Eli)
}

// ApiUnavailableError indicates the upstream returned 502/503, or the
// circuit breaker is open.
type ApiUnavailableError struct {
	Message    string
	StatusCode int
}

func (e *ApiUnavailableError) Error() string { return e.Message }

// SejmAPIError is a generic non-2xx upstream failure not covered by a more
// specific category.
type SejmAPIError struct {
	Message    string
	StatusCode int
	URL        string
}

func (e *SejmAPIError) Error() string { return e.Message }

// ContentNotAvailableError indicates neither HTML nor PDF content could be
// obtained for an act.
type ContentNotAvailableError struct {
	Eli    string
	Format string
}

func (e *ContentNotAvailableError) Error() string {
	return fmt.Sprintf("Treść niedostępna dla %s w formacie %s", e.Eli, e.Format)
}

// DocumentNotLoadedError indicates a content operation was attempted before
// the act's content was loaded into the Document Store.
type DocumentNotLoadedError struct {
	Eli string
}

func (e *DocumentNotLoadedError) Error() string {
	return fmt.Sprintf(
		"Dokument %s nie jest załadowany. Użyj get_act_details(eli='%s', load_content=true)",
		e.Eli, e.Eli,
	)
}

// InvalidEliError indicates a malformed ELI identifier was supplied.
type InvalidEliError struct {
	Eli string
}

func (e *InvalidEliError) Error() string {
	return fmt.Sprintf(
		"Nieprawidłowy format ELI: %s. Oczekiwany: wydawca/rok/pozycja (np. DU/2024/1716)",
		e.Eli,
	)
}

// SectionNotFoundError indicates a loaded document has no section matching
// the requested id/title/Art. pattern.
type SectionNotFoundError struct {
	Eli     string
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf(
		"Sekcja '%s' nie znaleziona w akcie %s. Użyj read_act_content(eli='%s') aby zobaczyć dostępne sekcje.",
		e.Section, e.Eli, e.Eli,
	)
}

// ResultSetNotFoundError indicates a referenced result set id is missing or
// has expired.
type ResultSetNotFoundError struct {
	ResultSetID string
}

func (e *ResultSetNotFoundError) Error() string {
	return fmt.Sprintf("Nie znaleziono zestawu wyników: %s", e.ResultSetID)
}

// ValidationError is a generic catch-all for malformed tool input (bad regex,
// bad date literal, unknown enum value) not covered by a more specific type.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
