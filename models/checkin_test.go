package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOfStripsTimeOfDay(t *testing.T) {
	ts := time.Date(2026, 8, 30, 23, 59, 59, 123456789, time.UTC)
	day := DayOf(ts)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), day)
}

func TestDayOfNormalizesToUTC(t *testing.T) {
	// 23:30 at UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2026, 8, 30, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), DayOf(ts))
}

func TestQuestionSetIsStable(t *testing.T) {
	assert.Len(t, QuestionIDs, 7)
	assert.Equal(t, "sleep_quality", QuestionIDs[0])
	assert.Equal(t, "sleep_readiness", QuestionIDs[6])
}
