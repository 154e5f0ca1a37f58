package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardFirstEarnInserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBadgeRepository(db)

	mock.ExpectExec("INSERT INTO .user_badges. (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	awarded, err := repo.Award(7, 3)
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardDuplicateIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBadgeRepository(db)

	// The unique index swallows the insert. Zero rows affected means the
	// badge was already earned, possibly by a concurrent evaluation.
	mock.ExpectExec("INSERT INTO .user_badges. (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	awarded, err := repo.Award(7, 3)
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.NoError(t, mock.ExpectationsWereMet())
}
