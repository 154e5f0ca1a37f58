package repository

import (
	"levelup_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) FindPublished() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Where("published = ?", true).Order("`order`, id").Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	return &topic, err
}

// MarkCompleted records the completion once per (user, topic); repeats are
// absorbed by the unique index. Returns false when already completed.
func (r *TopicRepository) MarkCompleted(userID, topicID uint) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.TopicCompletion{
		UserID:      userID,
		TopicID:     topicID,
		CompletedAt: time.Now(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TopicRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.TopicCompletion{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *TopicRepository) FindCompletedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.TopicCompletion{}).
		Where("user_id = ?", userID).
		Pluck("topic_id", &ids).Error
	return ids, err
}
