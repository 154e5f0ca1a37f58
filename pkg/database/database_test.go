package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const settingDefaultCount = 6

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}
	return db, mock
}

func TestSeedSettingsInsertsMissingRows(t *testing.T) {
	db, mock := newMockDB(t)

	// Map iteration order is random, so expectations are unordered.
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < settingDefaultCount; i++ {
		mock.ExpectQuery("SELECT count").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO .app_settings.").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	seedSettings(db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSettingsKeepsExistingRows(t *testing.T) {
	db, mock := newMockDB(t)

	mock.MatchExpectationsInOrder(false)
	for i := 0; i < settingDefaultCount; i++ {
		mock.ExpectQuery("SELECT count").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	seedSettings(db)
	assert.NoError(t, mock.ExpectationsWereMet())
}
