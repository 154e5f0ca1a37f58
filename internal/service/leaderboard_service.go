package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"levelup_backend/internal/repository"
	"levelup_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	DefaultLeaderboardLimit = 100
	leaderboardCacheTTL     = 60 * time.Second
)

type LeaderboardType string

const (
	LeaderboardGlobal LeaderboardType = "global"
	LeaderboardWeekly LeaderboardType = "weekly"
)

var ErrInvalidLeaderboardType = errors.New("leaderboard type must be global or weekly")

type LeaderboardService struct {
	UserRepo        *repository.UserRepository
	LeaderboardRepo *repository.LeaderboardRepository
	Redis           *redis.Client
}

func NewLeaderboardService(
	userRepo *repository.UserRepository,
	leaderboardRepo *repository.LeaderboardRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		UserRepo:        userRepo,
		LeaderboardRepo: leaderboardRepo,
		Redis:           rdb,
	}
}

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     uint   `json:"userId"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	RankChange int    `json:"rankChange"`
}

type LeaderboardResponse struct {
	Type            LeaderboardType    `json:"type"`
	Entries         []LeaderboardEntry `json:"entries"`
	CurrentUserRank int                `json:"currentUserRank,omitempty"`
}

func xpColumn(boardType LeaderboardType) (string, error) {
	switch boardType {
	case LeaderboardGlobal:
		return "xp", nil
	case LeaderboardWeekly:
		return "weekly_xp", nil
	default:
		return "", ErrInvalidLeaderboardType
	}
}

// applyRankChanges annotates entries with their movement versus the
// previous snapshot: previous minus current, so moving up is positive.
// Users absent from the snapshot stay at zero.
func applyRankChanges(entries []LeaderboardEntry, previous map[uint]int) {
	for i := range entries {
		if prev, ok := previous[entries[i].UserID]; ok {
			entries[i].RankChange = prev - entries[i].Rank
		}
	}
}

// GetLeaderboard builds the ranked list. currentUserID of 0 means the
// caller is anonymous. The entry list is cached in Redis for a short TTL;
// the caller-specific rank lookup never is.
func (s *LeaderboardService) GetLeaderboard(boardType LeaderboardType, limit int, currentUserID uint) (*LeaderboardResponse, error) {
	column, err := xpColumn(boardType)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 1000 {
		limit = DefaultLeaderboardLimit
	}

	entries, err := s.cachedEntries(boardType, column, limit)
	if err != nil {
		return nil, err
	}

	resp := &LeaderboardResponse{Type: boardType, Entries: entries}

	if currentUserID != 0 {
		rank, err := s.currentUserRank(column, currentUserID, entries)
		if err != nil {
			logger.Log.Error("failed to resolve caller rank", zap.Uint("userId", currentUserID), zap.Error(err))
		} else {
			resp.CurrentUserRank = rank
		}
	}

	return resp, nil
}

func (s *LeaderboardService) cachedEntries(boardType LeaderboardType, column string, limit int) ([]LeaderboardEntry, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", boardType, limit)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.buildEntries(boardType, column, limit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Debug("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}

func (s *LeaderboardService) buildEntries(boardType LeaderboardType, column string, limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByColumn(column, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		xp := user.XP
		if boardType == LeaderboardWeekly {
			xp = user.WeeklyXP
		}
		entries[i] = LeaderboardEntry{
			Rank:   i + 1,
			UserID: user.ID,
			Name:   user.Name,
			Avatar: user.Avatar,
			XP:     xp,
			Level:  user.Level,
			Streak: user.Streak,
		}
	}

	// Day-over-day movement only exists for the global board; the weekly
	// board resets too often for yesterday's ranks to mean anything.
	if boardType == LeaderboardGlobal {
		yesterday := utcDay(time.Now()).AddDate(0, 0, -1)
		previous, err := s.LeaderboardRepo.FindRanksByDate(yesterday)
		if err != nil {
			logger.Log.Error("failed to load leaderboard snapshot", zap.Error(err))
		} else {
			applyRankChanges(entries, previous)
		}
	}

	return entries, nil
}

// currentUserRank prefers the caller's position in the already-built
// list; otherwise it computes the true rank with a targeted count, which
// also covers admins and users ranked below the cutoff.
func (s *LeaderboardService) currentUserRank(column string, userID uint, entries []LeaderboardEntry) (int, error) {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Rank, nil
		}
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return 0, err
	}
	value := user.XP
	if column == "weekly_xp" {
		value = user.WeeklyXP
	}

	above, err := s.UserRepo.CountRankedAbove(column, value)
	if err != nil {
		return 0, err
	}
	return int(above) + 1, nil
}

// SnapshotDailyRanks persists today's global ranks once per UTC day. It
// is cheap to call aggressively; repeats are no-ops.
func (s *LeaderboardService) SnapshotDailyRanks() error {
	today := utcDay(time.Now())

	exists, err := s.LeaderboardRepo.HasSnapshotForDate(today)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	users, err := s.UserRepo.FindTopByColumn("xp", DefaultLeaderboardLimit)
	if err != nil {
		return err
	}

	ranks := make(map[uint]int, len(users))
	for i, user := range users {
		ranks[user.ID] = i + 1
	}

	return s.LeaderboardRepo.SaveSnapshot(today, ranks)
}

// ResetArchive is one past weekly reset with its decoded top entries.
type ResetArchive struct {
	ID           uint            `json:"id"`
	ResetAt      time.Time       `json:"resetAt"`
	TopUsers     []ResetTopEntry `json:"topUsers"`
	Participants int             `json:"participants"`
}

// ResetArchives exposes the weekly reset history for admin review.
func (s *LeaderboardService) ResetArchives(limit int) ([]ResetArchive, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.LeaderboardRepo.FindResetArchives(limit)
	if err != nil {
		return nil, err
	}

	archives := make([]ResetArchive, len(rows))
	for i, row := range rows {
		archives[i] = ResetArchive{
			ID:           row.ID,
			ResetAt:      row.ResetAt,
			Participants: row.Participants,
		}
		if err := json.Unmarshal([]byte(row.TopUsers), &archives[i].TopUsers); err != nil {
			logger.Log.Warn("malformed reset archive payload", zap.Uint("archiveId", row.ID))
		}
	}
	return archives, nil
}
