package breaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpensAfterThreshold(t *testing.T) {
	b := New(3, time.Hour, 2)
	for i := 0; i < 2; i++ {
		b.RecordFailure()
		assert.Equal(t, Closed, b.State())
		assert.True(t, b.CanExecute())
	}
	b.RecordFailure()
	assert.Equal(t, Open, b.State())
	assert.False(t, b.CanExecute())
}

func TestHalfOpenRecoveryCycle(t *testing.T) {
	b := New(1, 20*time.Millisecond, 2)
	b.RecordFailure()
	assert.Equal(t, Open, b.State())
	assert.False(t, b.CanExecute())

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, HalfOpen, b.State())
	assert.True(t, b.CanExecute())
	b.RecordSuccess()
	assert.True(t, b.CanExecute())
	b.RecordSuccess()
	assert.Equal(t, Closed, b.State())
	assert.Equal(t, 0, b.FailureCount())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	b := New(1, 10*time.Millisecond, 3)
	b.RecordFailure()
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, HalfOpen, b.State())

	b.RecordFailure()
	assert.Equal(t, Open, b.State())
}

func TestSuccessResetsFailureCountWhenClosed(t *testing.T) {
	b := New(5, time.Hour, 3)
	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	assert.Equal(t, 0, b.FailureCount())
}

func TestDefaultsAppliedForNonPositiveParams(t *testing.T) {
	b := New(0, 0, 0)
	assert.Equal(t, Closed, b.State())
}
