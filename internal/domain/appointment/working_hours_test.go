package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestWindowContains_InclusiveBounds(t *testing.T) {
	wh := models.WorkingHour{StartTime: "09:00", EndTime: "12:00"}

	tests := []struct {
		at   string
		want bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"10:30", true},
		{"12:00", true},
		{"12:01", false},
	}
	for _, tt := range tests {
		t.Run(tt.at, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowContains(wh, tt.at))
		})
	}
}

func TestWindowContains_BrokenWindow(t *testing.T) {
	assert.False(t, WindowContains(models.WorkingHour{StartTime: "", EndTime: "12:00"}, "10:00"))
	assert.False(t, WindowContains(models.WorkingHour{StartTime: "09:00", EndTime: "12:00"}, "bad"))
}

func TestAnyWindowContains_DisjointWindows(t *testing.T) {
	windows := []models.WorkingHour{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "15:00", EndTime: "18:00"},
	}

	assert.True(t, AnyWindowContains(windows, "11:00"))
	assert.True(t, AnyWindowContains(windows, "15:00"))
	assert.False(t, AnyWindowContains(windows, "13:30"))
	assert.False(t, AnyWindowContains(nil, "10:00"))
}

func TestValidateWindow(t *testing.T) {
	s, e, err := ValidateWindow("9:00", "13:00:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", s)
	assert.Equal(t, "13:00", e)

	_, _, err = ValidateWindow("13:00", "09:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))

	_, _, err = ValidateWindow("10:00", "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_window"))

	_, _, err = ValidateWindow("xx", "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}
