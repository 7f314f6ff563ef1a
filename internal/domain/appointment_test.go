package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range OccupyingStatuses {
		assert.True(t, ValidStatus(s), "occupying status %s", s)
	}
	for _, s := range ReleasedStatuses {
		assert.True(t, ValidStatus(s), "released status %s", s)
	}

	assert.False(t, ValidStatus("postponed"))
	assert.False(t, ValidStatus(""))
}

func TestOccupiesSlot(t *testing.T) {
	for _, s := range OccupyingStatuses {
		appt := Appointment{Status: s}
		assert.True(t, appt.OccupiesSlot(), "status %s must occupy the slot", s)
	}
	for _, s := range ReleasedStatuses {
		appt := Appointment{Status: s}
		assert.False(t, appt.OccupiesSlot(), "status %s must free the slot", s)
	}
}
