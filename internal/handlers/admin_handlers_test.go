package handlers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mock"
)

// ======================================================
// DOCTORS
// ======================================================

func TestDoctorCreate_DuplicateLicense(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewDoctorHandler(db, nil, testLogger())
	r := newRouter()
	r.POST("/doctors", h.Create)

	sm.ExpectBegin()
	sm.ExpectQuery(`INSERT INTO "doctors"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/doctors", map[string]any{
		"full_name": "Ana Ruiz", "specialty": "Cardiology", "license_number": "L-1",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "license_taken", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestDoctorCreate_MissingFields(t *testing.T) {
	db, _ := mock.MustCreateGormMock()
	h := NewDoctorHandler(db, nil, testLogger())
	r := newRouter()
	r.POST("/doctors", h.Create)

	w := doJSON(t, r, http.MethodPost, "/doctors", map[string]any{"full_name": "Ana Ruiz"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])
}

// ======================================================
// WEEKDAYS
// ======================================================

func TestWeekdayUpdate_DisablesDayInPolicy(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	policy := domain.NewWeekdayPolicy()
	h := NewWeekdayHandler(db, policy, nil, testLogger())
	r := newRouter()
	r.PATCH("/weekdays/:id", h.Update)

	sm.ExpectBegin()
	sm.ExpectExec(`UPDATE "weekdays" SET "status"`).
		WithArgs(false, 6).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sm.ExpectCommit()

	w := doJSON(t, r, http.MethodPatch, "/weekdays/6", map[string]any{"status": false})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Saturday", body["day"])
	assert.Equal(t, false, body["status"])
	assert.False(t, policy.IsEnabled(6))
	assert.True(t, policy.IsEnabled(1))
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestWeekdayUpdate_RejectsOutOfRange(t *testing.T) {
	db, _ := mock.MustCreateGormMock()
	h := NewWeekdayHandler(db, domain.NewWeekdayPolicy(), nil, testLogger())
	r := newRouter()
	r.PATCH("/weekdays/:id", h.Update)

	w := doJSON(t, r, http.MethodPatch, "/weekdays/8", map[string]any{"status": true})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_weekday", decode(t, w)["error_code"])
}

func TestWeekdayUpdate_StatusRequired(t *testing.T) {
	db, _ := mock.MustCreateGormMock()
	h := NewWeekdayHandler(db, domain.NewWeekdayPolicy(), nil, testLogger())
	r := newRouter()
	r.PATCH("/weekdays/:id", h.Update)

	w := doJSON(t, r, http.MethodPatch, "/weekdays/2", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])
}

// ======================================================
// CLINICAL HISTORY
// ======================================================

func TestClinicalHistoryCreate_RequiresCompletedAppointment(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewClinicalHistoryHandler(db, testClock(), nil, testLogger())
	r := newRouter()
	r.POST("/clinical-histories", h.Create)

	sm.ExpectBegin()
	sm.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "scheduled"))
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/clinical-histories", map[string]any{
		"appointment_id": 3, "reason": "Chest pain",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "appointment_not_done", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestClinicalHistoryCreate_UnknownAppointment(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewClinicalHistoryHandler(db, testClock(), nil, testLogger())
	r := newRouter()
	r.POST("/clinical-histories", h.Create)

	sm.ExpectBegin()
	sm.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/clinical-histories", map[string]any{
		"appointment_id": 3, "reason": "Chest pain",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "appointment_not_found", decode(t, w)["error_code"])
}

// ======================================================
// SERVICES / ME
// ======================================================

func TestServiceList(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewServiceHandler(db, nil, testLogger())
	r := newRouter()
	r.GET("/services", h.List)

	sm.ExpectQuery(`SELECT (.+) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_min", "price"}).
			AddRow(1, "General Consultation", 30, "0.00").
			AddRow(2, "Echo", 45, "850.50"))

	w := doJSON(t, r, http.MethodGet, "/services", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.EqualValues(t, 2, body["total"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestGetMe(t *testing.T) {
	h := NewMeHandler("America/Mexico_City")
	r := newRouter()
	r.GET("/me", h.GetMe)

	w := doJSON(t, r, http.MethodGet, "/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "tester", body["actor"])
	assert.Equal(t, "America/Mexico_City", body["timezone"])
}

// ======================================================
// WORKING HOURS / PATIENTS
// ======================================================

func TestWorkingHoursUpdate_RejectsInvertedWindow(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewWorkingHoursHandler(db, nil, testLogger())
	r := newRouter()
	r.PUT("/working-hours/:id", h.Update)

	w := doJSON(t, r, http.MethodPut, "/working-hours/1", map[string]any{
		"windows": []map[string]any{{"weekday_id": 1, "start_time": "12:00", "end_time": "09:00"}},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_time_window", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestWorkingHoursUpdate_UnknownDoctor(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewWorkingHoursHandler(db, nil, testLogger())
	r := newRouter()
	r.PUT("/working-hours/:id", h.Update)

	sm.ExpectBegin()
	sm.ExpectQuery(`SELECT "id" FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPut, "/working-hours/9", map[string]any{
		"windows": []map[string]any{{"weekday_id": 2, "start_time": "09:00", "end_time": "13:00"}},
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "doctor_not_found", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestPatientCreate_Validation(t *testing.T) {
	db, _ := mock.MustCreateGormMock()
	h := NewPatientHandler(db, testClock(), nil, testLogger())
	r := newRouter()
	r.POST("/patients", h.Create)

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{"no name", map[string]any{"phone": "555"}, "missing_fields"},
		{"future birth date", map[string]any{"full_name": "Luis", "date_of_birth": "2031-01-01"}, "invalid_date"},
		{"bad gender", map[string]any{"full_name": "Luis", "gender": "robot"}, "invalid_gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/patients", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["error_code"])
		})
	}
}

func TestClinicalHistoryCreate_OncePerAppointment(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewClinicalHistoryHandler(db, testClock(), nil, testLogger())
	r := newRouter()
	r.POST("/clinical-histories", h.Create)

	sm.ExpectBegin()
	sm.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "completed"))
	sm.ExpectQuery(`SELECT count\(\*\) FROM "clinical_histories"`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/clinical-histories", map[string]any{
		"appointment_id": 3, "reason": "Chest pain",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "history_exists", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

func TestClinicalHistoryCreate_UniqueViolationIsConflict(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewClinicalHistoryHandler(db, testClock(), nil, testLogger())
	r := newRouter()
	r.POST("/clinical-histories", h.Create)

	sm.ExpectBegin()
	sm.ExpectQuery(`SELECT (.+) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(3, "completed"))
	sm.ExpectQuery(`SELECT count\(\*\) FROM "clinical_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sm.ExpectQuery(`INSERT INTO "clinical_histories"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	sm.ExpectRollback()

	w := doJSON(t, r, http.MethodPost, "/clinical-histories", map[string]any{
		"appointment_id": 3, "reason": "Chest pain",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "history_exists", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}

// ======================================================
// PATCH REQUIRED FIELDS
// ======================================================

func TestDoctorUpdate_RejectsBlankRequiredFields(t *testing.T) {
	for _, body := range []map[string]any{
		{"full_name": ""},
		{"specialty": "   "},
		{"license_number": ""},
	} {
		db, sm := mock.MustCreateGormMock()
		h := NewDoctorHandler(db, nil, testLogger())
		r := newRouter()
		r.PATCH("/doctors/:id", h.Update)

		sm.ExpectQuery(`SELECT (.+) FROM "doctors"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "specialty", "license_number"}).
				AddRow(1, "Ana Ruiz", "Cardiology", "L-1"))

		w := doJSON(t, r, http.MethodPatch, "/doctors/1", body)

		require.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "invalid_request", decode(t, w)["error_code"])
		assert.NoError(t, sm.ExpectationsWereMet(), "no UPDATE is issued")
	}
}

func TestServiceUpdate_RejectsBlankName(t *testing.T) {
	db, sm := mock.MustCreateGormMock()
	h := NewServiceHandler(db, nil, testLogger())
	r := newRouter()
	r.PATCH("/services/:id", h.Update)

	sm.ExpectQuery(`SELECT (.+) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_min", "price"}).
			AddRow(2, "Echo", 45, "850.50"))

	w := doJSON(t, r, http.MethodPatch, "/services/2", map[string]any{"name": " "})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])
	assert.NoError(t, sm.ExpectationsWereMet())
}
