package repository

import (
	"levelup_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("criteria_type, criteria_value").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.First(&badge, id).Error
	return &badge, err
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

// FindEarnedIDs returns the badge IDs the user already holds.
func (r *BadgeRepository) FindEarnedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error
	return ids, err
}

func (r *BadgeRepository) FindEarnedByUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.earned_at DESC").
		Find(&badges).Error
	return badges, err
}

// Award inserts the (user, badge) pair, relying on the unique index for
// idempotence. Returns false when the badge was already earned, including
// when a concurrent evaluation won the insert.
func (r *BadgeRepository) Award(userID, badgeID uint) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
