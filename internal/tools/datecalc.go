package tools

import (
	"context"
	"fmt"

	"github.com/sejmkit/gateway/internal/hints"
	"github.com/sejmkit/gateway/internal/models"
)

// CalculateLegalDate serves tool #9: calculate_legal_date.
func (t *Tools) CalculateLegalDate(ctx context.Context, params map[string]any) string {
	days := asInt(params["days"], 0)
	months := asInt(params["months"], 0)
	years := asInt(params["years"], 0)
	baseDate := asString(params["base_date"])

	base, calculated, err := t.DateCalc.Do(baseDate, days, months, years)
	if err != nil {
		return respondErr[models.DateOutput]("calculate_legal_date", err)
	}

	out := models.DateOutput{
		BaseDate:       base,
		CalculatedDate: calculated,
		DaysOffset:     days,
		MonthsOffset:   months,
		YearsOffset:    years,
		Description:    fmt.Sprintf("%s + (%dd %dm %dy) = %s", base, days, months, years, calculated),
	}
	return respond(out, hints.Date(), nil)
}
