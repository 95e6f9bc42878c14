package tools

import (
	"context"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// CompareActs serves tool #13: compare_acts.
func (t *Tools) CompareActs(ctx context.Context, params map[string]any) string {
	eliA, err := parseELI(asString(params["eli_a"]))
	if err != nil {
		return respondErr[models.CompareOutput]("compare_acts", err)
	}
	eliB, err := parseELI(asString(params["eli_b"]))
	if err != nil {
		return respondErr[models.CompareOutput]("compare_acts", err)
	}

	result, err := t.Compare.Do(ctx, eliA, eliB)
	if err != nil {
		return respondErr[models.CompareOutput]("compare_acts", err)
	}

	out := models.CompareOutput{
		EliA:           eliA.String(),
		EliB:           eliB.String(),
		Comparison:     result.Comparison,
		CommonKeywords: result.CommonKeywords,
		Differences:    result.Differences,
	}
	if out.CommonKeywords == nil {
		out.CommonKeywords = []string{}
	}
	if out.Differences == nil {
		out.Differences = []string{}
	}
	return respond(out, hints.Compare(eliA.String(), eliB.String()), nil)
}
