package controller

import (
	"errors"
	"strconv"

	"levelup_backend/internal/service"
	"levelup_backend/internal/util"
	"levelup_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
	ResetService       *service.ResetService
}

func NewLeaderboardController(
	leaderboardService *service.LeaderboardService,
	resetService *service.ResetService,
) *LeaderboardController {
	return &LeaderboardController{
		LeaderboardService: leaderboardService,
		ResetService:       resetService,
	}
}

// GetLeaderboard godoc
// @Summary Ranked users with rank deltas and the caller's own rank
// @Tags leaderboard
// @Produce json
// @Param type query string false "global or weekly" default(global)
// @Param limit query int false "max entries" default(100)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	boardType := service.LeaderboardType(ctx.DefaultQuery("type", string(service.LeaderboardGlobal)))

	limit := service.DefaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			util.BadRequest(ctx, "limit must be a positive integer")
			return
		}
		limit = n
	}

	var currentUserID uint
	if user := util.GetUserFromContext(ctx); user != nil {
		currentUserID = user.UserID
	}

	// Reads double as the scheduler tick: a due weekly reset and the
	// daily rank snapshot piggyback on leaderboard traffic, off the
	// request path. Both are idempotent, so overlapping requests are fine.
	go c.backgroundMaintenance()

	board, err := c.LeaderboardService.GetLeaderboard(boardType, limit, currentUserID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLeaderboardType) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, board)
}

func (c *LeaderboardController) backgroundMaintenance() {
	if _, err := c.ResetService.MaybeRun(false); err != nil {
		logger.Log.Warn("opportunistic weekly reset failed", zap.Error(err))
	}
	if err := c.LeaderboardService.SnapshotDailyRanks(); err != nil {
		logger.Log.Warn("daily rank snapshot failed", zap.Error(err))
	}
}
