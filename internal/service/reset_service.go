package service

import (
	"encoding/json"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"
	"levelup_backend/pkg/logger"
	"levelup_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// minResetInterval guards against the reset firing twice on the same
// reset day, and against clock or timezone edge doubles.
const minResetInterval = 6 * 24 * time.Hour

type ResetService struct {
	UserRepo        *repository.UserRepository
	LeaderboardRepo *repository.LeaderboardRepository
	SettingsRepo    *repository.SettingsRepository
	Settings        *SettingsService
	DB              *gorm.DB
}

func NewResetService(
	userRepo *repository.UserRepository,
	leaderboardRepo *repository.LeaderboardRepository,
	settingsRepo *repository.SettingsRepository,
	settings *SettingsService,
	db *gorm.DB,
) *ResetService {
	return &ResetService{
		UserRepo:        userRepo,
		LeaderboardRepo: leaderboardRepo,
		SettingsRepo:    settingsRepo,
		Settings:        settings,
		DB:              db,
	}
}

// ResetTopEntry is one archived row of the weekly board at reset time.
type ResetTopEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	WeeklyXP int    `json:"weeklyXp"`
}

type ResetOutcome struct {
	Performed    bool            `json:"performed"`
	ResetAt      time.Time       `json:"resetAt,omitempty"`
	TopUsers     []ResetTopEntry `json:"topUsers,omitempty"`
	Participants int             `json:"participants"`
}

// resetDue applies the schedule checks: auto-reset on, today is the
// configured weekday (UTC), and the previous reset is at least six days
// old. lastReset is the raw stored value, empty when never reset.
func resetDue(autoEnabled bool, resetDay, lastReset string, now time.Time) bool {
	if !autoEnabled {
		return false
	}
	if !strings.EqualFold(now.UTC().Weekday().String(), resetDay) {
		return false
	}
	if lastReset != "" {
		if last, err := time.Parse(time.RFC3339, lastReset); err == nil {
			if now.Sub(last) < minResetInterval {
				return false
			}
		}
	}
	return true
}

// MaybeRun performs the weekly reset when due. With force set the
// schedule checks are skipped, but not the marker claim: two racing
// triggers still archive and zero exactly once, because only the caller
// whose conditional update on last_weekly_reset_date lands does the work.
func (s *ResetService) MaybeRun(force bool) (*ResetOutcome, error) {
	now := time.Now()

	lastReset, markerExists, err := s.Settings.GetRaw(model.SettingLastWeeklyResetDate)
	if err != nil {
		return nil, err
	}

	if !force {
		autoEnabled := s.Settings.GetBool(model.SettingAutoWeeklyReset, false)
		resetDay := s.Settings.GetString(model.SettingWeeklyResetDay, "Monday")
		if !resetDue(autoEnabled, resetDay, lastReset, now) {
			return &ResetOutcome{Performed: false}, nil
		}
	}

	outcome := &ResetOutcome{}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Claim the marker first; losing the claim means another trigger
		// is doing (or has done) this cycle's reset. A marker row that was
		// never seeded is claimed by inserting it instead, since a
		// conditional update on a missing row can never match.
		var claimed bool
		var err error
		if markerExists {
			claimed, err = s.SettingsRepo.CompareAndSet(tx,
				model.SettingLastWeeklyResetDate, lastReset, now.Format(time.RFC3339))
		} else {
			claimed, err = s.SettingsRepo.InsertIfAbsent(tx,
				model.SettingLastWeeklyResetDate, now.Format(time.RFC3339))
		}
		if err != nil {
			return err
		}
		if !claimed {
			return util.ErrResetAlreadyClaimed
		}

		var top []model.User
		if err := tx.Model(&model.User{}).
			Where("role <> ?", model.RoleAdmin).
			Where("blocked = ?", false).
			Order("weekly_xp DESC, id ASC").
			Limit(10).
			Find(&top).Error; err != nil {
			return err
		}

		var participants int64
		if err := tx.Model(&model.User{}).
			Where("role <> ?", model.RoleAdmin).
			Where("blocked = ?", false).
			Where("weekly_xp > 0").
			Count(&participants).Error; err != nil {
			return err
		}

		topEntries := make([]ResetTopEntry, 0, len(top))
		for i, user := range top {
			if user.WeeklyXP == 0 {
				break
			}
			topEntries = append(topEntries, ResetTopEntry{
				Rank:     i + 1,
				UserID:   user.ID,
				Name:     user.Name,
				WeeklyXP: user.WeeklyXP,
			})
		}

		payload, err := json.Marshal(topEntries)
		if err != nil {
			return err
		}

		if err := s.LeaderboardRepo.CreateResetArchive(tx, &model.WeeklyResetHistory{
			ResetAt:      now,
			TopUsers:     string(payload),
			Participants: int(participants),
		}); err != nil {
			return err
		}

		if err := s.UserRepo.ZeroWeeklyXP(tx); err != nil {
			return err
		}

		outcome.Performed = true
		outcome.ResetAt = now
		outcome.TopUsers = topEntries
		outcome.Participants = int(participants)
		return nil
	})
	if err != nil {
		if err == util.ErrResetAlreadyClaimed {
			logger.Log.Info("weekly reset already claimed by a concurrent trigger")
			return &ResetOutcome{Performed: false}, nil
		}
		return nil, err
	}

	monitoring.WeeklyResetRuns.Inc()
	logger.Log.Info("weekly leaderboard reset performed",
		zap.Time("resetAt", now),
		zap.Int("participants", outcome.Participants))
	return outcome, nil
}
