package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Mexico_City", Location("").String())
	assert.Equal(t, "America/Mexico_City", Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestClock_CurrentUsesLocation(t *testing.T) {
	instant := time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC)
	c := Clock{Loc: Location("America/Mexico_City"), Now: func() time.Time { return instant }}

	got := c.Current()

	assert.True(t, got.Equal(instant))
	assert.Equal(t, 12, got.Hour())
}
