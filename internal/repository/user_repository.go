package repository

import (
	"levelup_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// AddXP increments both XP counters and recomputes the stored level in a
// single statement. MySQL evaluates SET clauses left to right, so the
// level expression already sees the incremented xp; concurrent grants can
// never store a level derived from a stale total. Raw SQL because the
// clause order is load-bearing here.
func (r *UserRepository) AddXP(userID uint, xp int) error {
	return r.DB.Exec(
		"UPDATE users SET xp = xp + ?, weekly_xp = weekly_xp + ?, level = FLOOR(SQRT(xp / 100)) + 1, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		xp, xp, time.Now(), userID,
	).Error
}

func (r *UserRepository) UpdateStreak(userID uint, streak int, lastActive time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak":      streak,
			"last_active": lastActive,
		}).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}

func (r *UserRepository) SetBlocked(userID uint, blocked bool) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("blocked", blocked).Error
}

// rankable scopes every leaderboard query: admins and blocked accounts
// never rank.
func (r *UserRepository) rankable() *gorm.DB {
	return r.DB.Model(&model.User{}).
		Where("role <> ?", model.RoleAdmin).
		Where("blocked = ?", false)
}

// FindTopByColumn returns rankable users ordered by the given XP column.
// The id tiebreak keeps the order deterministic.
func (r *UserRepository) FindTopByColumn(column string, limit int) ([]model.User, error) {
	var users []model.User
	err := r.rankable().
		Order(column + " DESC, id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// CountRankedAbove returns how many rankable users strictly beat the given
// value on the given column; rank is that count plus one.
func (r *UserRepository) CountRankedAbove(column string, value int) (int64, error) {
	var count int64
	err := r.rankable().
		Where(column+" > ?", value).
		Count(&count).Error
	return count, err
}

// ZeroWeeklyXP resets the weekly counters; only nonzero rows are touched.
func (r *UserRepository) ZeroWeeklyXP(tx *gorm.DB) error {
	return tx.Model(&model.User{}).
		Where("weekly_xp > 0").
		Update("weekly_xp", 0).Error
}
