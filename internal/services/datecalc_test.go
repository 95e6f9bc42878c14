package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/apierrors"
)

func TestDateCalcFullDatePlusDays(t *testing.T) {
	base, calculated, err := DateCalc{}.Do("2024-01-01", 14, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", base)
	assert.Equal(t, "2024-01-15", calculated)
}

func TestDateCalcYearOnlyBase(t *testing.T) {
	base, calculated, err := DateCalc{}.Do("2024", 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", base)
	assert.Equal(t, "2024-02-01", calculated)
}

func TestDateCalcYearMonthBase(t *testing.T) {
	base, calculated, err := DateCalc{}.Do("2024-06", 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", base)
	assert.Equal(t, "2025-06-01", calculated)
}

func TestDateCalcEmptyBaseDefaultsToToday(t *testing.T) {
	base, calculated, err := DateCalc{}.Do("", 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), base)
	assert.NotEqual(t, base, calculated)
}

func TestDateCalcInvalidFormat(t *testing.T) {
	_, _, err := DateCalc{}.Do("01/01/2024", 0, 0, 0)
	require.Error(t, err)
	var verr *apierrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}
