package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The level must be recomputed in the same statement that bumps xp;
// a separate write could store a level derived from a stale total when
// grants race.
func TestAddXPRecomputesLevelInSameStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE users SET xp = xp \+ \?, weekly_xp = weekly_xp \+ \?, level = FLOOR\(SQRT\(xp / 100\)\) \+ 1`).
		WithArgs(50, 50, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddXP(1, 50)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
