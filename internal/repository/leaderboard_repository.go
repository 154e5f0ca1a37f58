package repository

import (
	"levelup_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

// SaveSnapshot writes one day's (user, rank) pairs. Re-running on the same
// day is a no-op thanks to the unique (date, user) index.
func (r *LeaderboardRepository) SaveSnapshot(date time.Time, ranks map[uint]int) error {
	if len(ranks) == 0 {
		return nil
	}
	rows := make([]model.LeaderboardHistory, 0, len(ranks))
	for userID, rank := range ranks {
		rows = append(rows, model.LeaderboardHistory{
			SnapshotDate: date,
			UserID:       userID,
			Rank:         rank,
		})
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// FindRanksByDate returns userID → rank for the given snapshot day.
func (r *LeaderboardRepository) FindRanksByDate(date time.Time) (map[uint]int, error) {
	var rows []model.LeaderboardHistory
	err := r.DB.Where("snapshot_date = ?", date.Format("2006-01-02")).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ranks := make(map[uint]int, len(rows))
	for _, row := range rows {
		ranks[row.UserID] = row.Rank
	}
	return ranks, nil
}

func (r *LeaderboardRepository) HasSnapshotForDate(date time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LeaderboardHistory{}).
		Where("snapshot_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *LeaderboardRepository) CreateResetArchive(tx *gorm.DB, archive *model.WeeklyResetHistory) error {
	return tx.Create(archive).Error
}

func (r *LeaderboardRepository) FindResetArchives(limit int) ([]model.WeeklyResetHistory, error) {
	var archives []model.WeeklyResetHistory
	err := r.DB.Order("reset_at DESC").Limit(limit).Find(&archives).Error
	return archives, err
}
