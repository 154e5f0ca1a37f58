package repository

import (
	"testing"

	"levelup_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAndSetWinsOnMatchingValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db)

	mock.ExpectExec("UPDATE .app_settings. SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.CompareAndSet(db, model.SettingLastWeeklyResetDate,
		"2026-08-17T06:00:00Z", "2026-08-24T06:00:00Z")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompareAndSetLosesOnStaleExpected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db)

	// Another writer already advanced the value, so the conditional
	// update matches nothing.
	mock.ExpectExec("UPDATE .app_settings. SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.CompareAndSet(db, model.SettingLastWeeklyResetDate,
		"2026-08-10T06:00:00Z", "2026-08-24T06:00:00Z")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIfAbsentCreatesMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db)

	mock.ExpectExec("INSERT INTO .app_settings. (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	claimed, err := repo.InsertIfAbsent(db, model.SettingLastWeeklyResetDate,
		"2026-08-24T06:00:00Z")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIfAbsentLosesToExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db)

	mock.ExpectExec("INSERT INTO .app_settings. (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.InsertIfAbsent(db, model.SettingLastWeeklyResetDate,
		"2026-08-24T06:00:00Z")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
