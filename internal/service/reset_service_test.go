package service

import (
	"testing"
	"time"

	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestResetDue(t *testing.T) {
	// 2025-06-16 is a Monday.
	monday := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	tests := []struct {
		name        string
		autoEnabled bool
		resetDay    string
		lastReset   string
		now         time.Time
		want        bool
	}{
		{"disabled", false, "Monday", "", monday, false},
		{"wrong weekday", true, "Monday", "", tuesday, false},
		{"never reset before", true, "Monday", "", monday, true},
		{"case insensitive day", true, "monday", "", monday, true},
		{
			"last reset a week ago",
			true, "Monday",
			monday.AddDate(0, 0, -7).Format(time.RFC3339),
			monday, true,
		},
		{
			"reset earlier the same day",
			true, "Monday",
			monday.Add(-2 * time.Hour).Format(time.RFC3339),
			monday, false,
		},
		{
			"five days is too recent",
			true, "Monday",
			monday.AddDate(0, 0, -5).Format(time.RFC3339),
			monday, false,
		},
		{
			"unparseable marker does not block",
			true, "Monday", "not-a-timestamp", monday, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resetDue(tt.autoEnabled, tt.resetDay, tt.lastReset, tt.now))
		})
	}
}

// newResetService wires a ResetService over gorm backed by sqlmock, so
// the claim arbitration can be driven by canned statement results.
func newResetService(t *testing.T) (*ResetService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}

	settingsRepo := repository.NewSettingsRepository(db)
	svc := NewResetService(
		repository.NewUserRepository(db),
		repository.NewLeaderboardRepository(db),
		settingsRepo,
		NewSettingsService(settingsRepo),
		db,
	)
	return svc, mock
}

func TestMaybeRunForcedButClaimLost(t *testing.T) {
	svc, mock := newResetService(t)

	mock.ExpectQuery("SELECT (.+) FROM .app_settings.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, model.SettingLastWeeklyResetDate, "2026-08-24T06:00:00Z"))

	mock.ExpectBegin()
	// A concurrent trigger already advanced the marker, so the
	// conditional update matches nothing and this caller backs off.
	mock.ExpectExec("UPDATE .app_settings. SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	outcome, err := svc.MaybeRun(true)
	require.NoError(t, err)
	assert.False(t, outcome.Performed)
	assert.Empty(t, outcome.TopUsers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaybeRunClaimsUnseededMarker(t *testing.T) {
	svc, mock := newResetService(t)

	// Marker row was never seeded: the claim must fall back to an insert,
	// not a conditional update that can never match.
	mock.ExpectQuery("SELECT (.+) FROM .app_settings.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO .app_settings.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT (.+) FROM .users.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "weekly_xp"}).
			AddRow(7, "ada", 120).
			AddRow(9, "grace", 80))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("INSERT INTO .weekly_reset_history.").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE .users. SET .weekly_xp.").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	outcome, err := svc.MaybeRun(true)
	require.NoError(t, err)
	assert.True(t, outcome.Performed)
	assert.Equal(t, 2, outcome.Participants)
	require.Len(t, outcome.TopUsers, 2)
	assert.Equal(t, uint(7), outcome.TopUsers[0].UserID)
	assert.Equal(t, 120, outcome.TopUsers[0].WeeklyXP)
	assert.Equal(t, 1, outcome.TopUsers[0].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaybeRunUnseededMarkerInsertLost(t *testing.T) {
	svc, mock := newResetService(t)

	mock.ExpectQuery("SELECT (.+) FROM .app_settings.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

	mock.ExpectBegin()
	// Another trigger inserted the marker between the read and the claim.
	mock.ExpectExec("INSERT INTO .app_settings.").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	outcome, err := svc.MaybeRun(true)
	require.NoError(t, err)
	assert.False(t, outcome.Performed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
