package db

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// activeSlotIndex enforces at most one active appointment per doctor, date and time.
const activeSlotIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_active_slot
ON appointments (doctor_id, date, time)
WHERE status IN ('scheduled', 'pending')`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Weekday{},
		&models.Doctor{},
		&models.Patient{},
		&models.Service{},
		&models.WorkingHour{},
		&models.Appointment{},
		&models.ClinicalHistory{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return fmt.Errorf("create active slot index: %w", err)
	}
	return nil
}

// SeedWeekdays inserts the seven ISO weekdays, enabled, without touching existing rows.
func SeedWeekdays(ctx context.Context, db *gorm.DB) error {
	days := make([]models.Weekday, 0, 7)
	for iso := 1; iso <= 7; iso++ {
		days = append(days, models.Weekday{
			ID:     uint(iso),
			Day:    domain.WeekdayName(iso),
			Status: true,
		})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&days).Error
}

// EnsureDefaultService creates the configured fallback service if no service
// with that name exists yet.
func EnsureDefaultService(ctx context.Context, db *gorm.DB, name string, durationMin int) (*models.Service, error) {
	svc := models.Service{
		Name:        name,
		DurationMin: durationMin,
		Price:       decimal.Zero,
	}

	if err := db.WithContext(ctx).
		Where(models.Service{Name: name}).
		Attrs(svc).
		FirstOrCreate(&svc).Error; err != nil {
		return nil, fmt.Errorf("ensure default service: %w", err)
	}
	return &svc, nil
}

func loadWeekdays(ctx context.Context, db *gorm.DB) ([]models.Weekday, error) {
	var rows []models.Weekday
	if err := db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load weekdays: %w", err)
	}
	return rows, nil
}

// LoadWeekdayPolicy reads the weekday table into a policy object.
func LoadWeekdayPolicy(ctx context.Context, db *gorm.DB) (*domain.WeekdayPolicy, error) {
	rows, err := loadWeekdays(ctx, db)
	if err != nil {
		return nil, err
	}
	return domain.PolicyFromRows(rows), nil
}

// RefreshWeekdayPolicy reloads policy in place from the weekday table.
func RefreshWeekdayPolicy(ctx context.Context, db *gorm.DB, policy *domain.WeekdayPolicy) error {
	rows, err := loadWeekdays(ctx, db)
	if err != nil {
		return err
	}
	policy.Load(rows)
	return nil
}

// WatchWeekdayPolicy refreshes policy every interval until ctx is done, so
// toggles made through another instance reach this one. A failed refresh
// keeps the previous state.
func WatchWeekdayPolicy(ctx context.Context, db *gorm.DB, policy *domain.WeekdayPolicy, interval time.Duration, log *logrus.Entry) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := RefreshWeekdayPolicy(ctx, db, policy); err != nil && ctx.Err() == nil {
				log.WithError(err).Warn("weekday policy refresh failed")
			}
		}
	}
}
