// Package hints generates the deterministic "what to do next" suggestions
// attached to every tool response, mirroring the upstream system's response
// enrichment step.
package hints

import (
	"strconv"

	"github.com/sejmkit/gateway/internal/models"
)

// Search builds hints for a search_legal_acts or browse_acts result.
func Search(totalCount int, hasResults bool, eli, resultSetID string, wasTruncated bool, appliedLimit int) []models.Hint {
	var out []models.Hint

	if hasResults && eli != "" {
		out = append(out, models.Hint{
			Message:    "Użyj get_act_details aby zobaczyć szczegóły wybranego aktu.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eli},
		})
	}
	if hasResults && resultSetID != "" {
		out = append(out, models.Hint{
			Message:    "Użyj filter_results aby zawęzić wyniki, np. po typie dokumentu (Ustawa, Rozporządzenie) lub wzorcem regex w tytule.",
			Tool:       "filter_results",
			Parameters: map[string]any{"result_set_id": resultSetID},
		})
	}

	switch {
	case wasTruncated && appliedLimit > 0:
		out = append(out, models.Hint{
			Message: formatTruncated(appliedLimit, totalCount),
			Tool:    "search_legal_acts",
		})
	case totalCount > 20:
		out = append(out, models.Hint{
			Message: "Użyj parametrów 'limit' i 'offset' do paginacji wyników.",
			Tool:    "search_legal_acts",
		})
	}

	if !hasResults {
		out = append(out,
			models.Hint{
				Message: "Brak wyników. UWAGA: Słowa kluczowe API działają z logiką AND — " +
					"wszystkie muszą wystąpić jednocześnie. Spróbuj mniej słów kluczowych " +
					"lub szukaj każdego osobno (logika OR).",
				Tool: "search_legal_acts",
			},
			models.Hint{
				Message: "Spróbuj poszerzyć kryteria: usuń filtry dat, zmień typ dokumentu lub rok.",
				Tool:    "search_legal_acts",
			},
			models.Hint{
				Message:    "Sprawdź dostępne słowa kluczowe, typy lub statusy w metadanych systemu.",
				Tool:       "get_system_metadata",
				Parameters: map[string]any{"category": "keywords"},
			},
		)
	}

	return out
}

func formatTruncated(appliedLimit, totalCount int) string {
	return "Wyniki ograniczone do " + strconv.Itoa(appliedLimit) + " (z " + strconv.Itoa(totalCount) + " dostępnych). " +
		"Użyj limit/offset do paginacji lub filter_results do zawężenia."
}

// ActDetails builds hints for a get_act_details result.
func ActDetails(eli string, isLoaded, hasHTML, justLoaded bool) []models.Hint {
	var out []models.Hint

	if !isLoaded && hasHTML {
		out = append(out, models.Hint{
			Message:    "Załaduj pełną treść aby czytać sekcje lub przeszukiwać akt.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eli, "load_content": true},
		})
	}

	if isLoaded {
		if justLoaded {
			out = append(out, models.Hint{
				Message: "Dokument załadowany do pamięci. TTL: 2h. " +
					"Po tym czasie wymagane ponowne załadowanie (load_content=true).",
			})
		}
		out = append(out,
			models.Hint{
				Message:    "Przeczytaj wybraną sekcję aktu.",
				Tool:       "read_act_content",
				Parameters: map[string]any{"eli": eli},
			},
			models.Hint{
				Message:    "Wyszukaj konkretne terminy w treści aktu.",
				Tool:       "search_in_act",
				Parameters: map[string]any{"eli": eli},
			},
		)
	}

	out = append(out, models.Hint{
		Message:    "Przeanalizuj powiązania i referencje tego aktu z innymi aktami.",
		Tool:       "analyze_act_relationships",
		Parameters: map[string]any{"eli": eli},
	})

	return out
}

// Metadata builds hints for a get_system_metadata result.
func Metadata(category string) []models.Hint {
	var out []models.Hint
	if category == "all" || category == "keywords" {
		out = append(out, models.Hint{
			Message: "Użyj pobranych słów kluczowych do wyszukiwania aktów prawnych.",
			Tool:    "search_legal_acts",
		})
	}
	if category == "all" || category == "types" {
		out = append(out, models.Hint{
			Message: "Filtruj wyniki wyszukiwania po typie dokumentu (np. 'Ustawa', 'Rozporządzenie').",
			Tool:    "search_legal_acts",
		})
	}
	return out
}

// Content builds hints for a read_act_content result.
func Content(eli string, hasSections bool) []models.Hint {
	if !hasSections {
		return nil
	}
	return []models.Hint{{
		Message:    "Wyszukaj konkretne terminy w treści tego aktu.",
		Tool:       "search_in_act",
		Parameters: map[string]any{"eli": eli},
	}}
}

// Relationships builds hints for an analyze_act_relationships result.
func Relationships(eli string, relationshipTypes []string) []models.Hint {
	out := []models.Hint{
		{
			Message:    "Sprawdź szczegóły tego aktu.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eli},
		},
		{
			Message:    "Załaduj treść aby przeczytać akt.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eli, "load_content": true},
		},
	}

	for _, t := range relationshipTypes {
		if t == string(models.RelationAmendingActs) || t == string(models.RelationChangedActs) {
			out = append(out, models.Hint{
				Message: "Śledź zmiany prawne w czasie.",
				Tool:    "track_legal_changes",
			})
			break
		}
	}

	return out
}

// Date builds hints for a calculate_legal_date result.
func Date() []models.Hint {
	return []models.Hint{
		{
			Message: "Użyj obliczonej daty jako filtra w wyszukiwaniu aktów prawnych.",
			Tool:    "search_legal_acts",
		},
		{
			Message: "Śledź zmiany prawne w zakresie dat.",
			Tool:    "track_legal_changes",
		},
	}
}

// Compare builds hints for a compare_acts result.
func Compare(eliA, eliB string) []models.Hint {
	return []models.Hint{
		{
			Message:    "Załaduj treść pierwszego aktu aby przeczytać szczegóły.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eliA, "load_content": true},
		},
		{
			Message:    "Załaduj treść drugiego aktu aby przeczytać szczegóły.",
			Tool:       "get_act_details",
			Parameters: map[string]any{"eli": eliB, "load_content": true},
		},
		{
			Message:    "Przeanalizuj powiązania pierwszego aktu.",
			Tool:       "analyze_act_relationships",
			Parameters: map[string]any{"eli": eliA},
		},
		{
			Message:    "Przeanalizuj powiązania drugiego aktu.",
			Tool:       "analyze_act_relationships",
			Parameters: map[string]any{"eli": eliB},
		},
	}
}
