package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testClock is Friday 2030-03-01 10:00 in the clinic timezone.
func testClock() timezone.Clock {
	loc := timezone.Location("America/Mexico_City")
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, loc)
	return timezone.Clock{Loc: loc, Now: func() time.Time { return now }}
}

func testDay(s string) time.Time {
	d, _ := time.ParseInLocation(domain.DateLayout, s, testClock().Loc)
	return d
}

// seededRepo has doctor 1 working Monday 09:00-12:00, patient 2 and service 5.
func seededRepo() *mock.Repository {
	repo := mock.NewRepository()
	repo.AddDoctor(models.Doctor{ID: 1, FullName: "Ana Ruiz", LicenseNumber: "L-1"})
	repo.AddPatient(models.Patient{ID: 2, FullName: "Luis Pérez"})
	repo.AddService(models.Service{ID: 5, Name: "Check-up", DurationMin: 20, Price: decimal.NewFromInt(300)})
	repo.AddWorkingHour(models.WorkingHour{ID: 1, DoctorID: 1, WeekdayID: 1, StartTime: "09:00", EndTime: "12:00"})
	return repo
}

// newRouter returns an engine with the actor middleware tests rely on.
func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextActor, "tester")
		c.Next()
	})
	return r
}

func testLogger() *logger.Logger {
	return logger.Discard()
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
