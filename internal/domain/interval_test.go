package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevisionSchedule_Order(t *testing.T) {
	s := RevisionSchedule()
	assert.Equal(t, []Interval{
		{7, UnitDays},
		{1, UnitMonths},
		{3, UnitMonths},
		{6, UnitMonths},
		{12, UnitMonths},
	}, s)
	assert.Len(t, s, RevisionCount)
}

func TestRevisionSchedule_ReturnsCopy(t *testing.T) {
	s := RevisionSchedule()
	s[0].Count = 99
	assert.Equal(t, 7, RevisionSchedule()[0].Count)
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "+7d", Interval{7, UnitDays}.String())
	assert.Equal(t, "+3mo", Interval{3, UnitMonths}.String())
}
