package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sejmkit/gateway/internal/models"
)

// Compare implements compare_acts: a metadata-level comparison of two acts'
// details, plus a keyword set-difference.
type Compare struct {
	details *ActDetails
}

func NewCompare(details *ActDetails) *Compare {
	return &Compare{details: details}
}

// Result is the shaped output of a comparison.
type Result struct {
	Comparison     map[string]any
	CommonKeywords []string
	Differences    []string
}

// Do fetches both acts (without loading content) and reports field
// differences plus keyword set-difference (only-A, only-B, intersection).
func (c *Compare) Do(ctx context.Context, eliA, eliB models.ELI) (Result, error) {
	a, err := c.details.Get(ctx, eliA, false)
	if err != nil {
		return Result{}, fmt.Errorf("act A (%s): %w", eliA.String(), err)
	}
	b, err := c.details.Get(ctx, eliB, false)
	if err != nil {
		return Result{}, fmt.Errorf("act B (%s): %w", eliB.String(), err)
	}

	onlyA, onlyB, both := keywordDiff(a.Keywords, b.Keywords)

	var diffs []string
	if a.Title != b.Title {
		diffs = append(diffs, "title")
	}
	if a.Type != b.Type {
		diffs = append(diffs, "type")
	}
	if a.Status != b.Status {
		diffs = append(diffs, "status")
	}
	if a.PromulgationDate != b.PromulgationDate {
		diffs = append(diffs, "promulgation_date")
	}
	if a.EffectiveDate != b.EffectiveDate {
		diffs = append(diffs, "effective_date")
	}

	comparison := map[string]any{
		"a": map[string]any{
			"title": a.Title, "type": a.Type, "status": a.Status,
			"promulgation_date": a.PromulgationDate, "effective_date": a.EffectiveDate,
		},
		"b": map[string]any{
			"title": b.Title, "type": b.Type, "status": b.Status,
			"promulgation_date": b.PromulgationDate, "effective_date": b.EffectiveDate,
		},
		"keywords_only_in_a": onlyA,
		"keywords_only_in_b": onlyB,
	}

	return Result{Comparison: comparison, CommonKeywords: both, Differences: diffs}, nil
}

func keywordDiff(a, b []string) (onlyA, onlyB, both []string) {
	setA := make(map[string]bool, len(a))
	setB := make(map[string]bool, len(b))
	for _, k := range a {
		setA[k] = true
	}
	for _, k := range b {
		setB[k] = true
	}
	for k := range setA {
		if setB[k] {
			both = append(both, k)
		} else {
			onlyA = append(onlyA, k)
		}
	}
	for k := range setB {
		if !setA[k] {
			onlyB = append(onlyB, k)
		}
	}
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	sort.Strings(both)
	return
}
