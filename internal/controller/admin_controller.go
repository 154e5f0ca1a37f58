package controller

import (
	"errors"
	"strconv"

	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	UserService        *service.UserService
	SettingsService    *service.SettingsService
	ResetService       *service.ResetService
	LeaderboardService *service.LeaderboardService
	BadgeRepo          *repository.BadgeRepository
}

func NewAdminController(
	userService *service.UserService,
	settingsService *service.SettingsService,
	resetService *service.ResetService,
	leaderboardService *service.LeaderboardService,
	badgeRepo *repository.BadgeRepository,
) *AdminController {
	return &AdminController{
		UserService:        userService,
		SettingsService:    settingsService,
		ResetService:       resetService,
		LeaderboardService: leaderboardService,
		BadgeRepo:          badgeRepo,
	}
}

// TriggerReset godoc
// @Summary Force the weekly XP reset to run now
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/leaderboard/reset [post]
func (c *AdminController) TriggerReset(ctx *gin.Context) {
	// Performed=false in the outcome means a concurrent trigger won the
	// claim; the reset still happened exactly once.
	outcome, err := c.ResetService.MaybeRun(true)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// ListResetArchives godoc
// @Summary Past weekly reset archives, newest first
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max archives" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/leaderboard/reset/history [get]
func (c *AdminController) ListResetArchives(ctx *gin.Context) {
	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	archives, err := c.LeaderboardService.ResetArchives(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, archives)
}

// GetSettings godoc
// @Summary All application settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/settings [get]
func (c *AdminController) GetSettings(ctx *gin.Context) {
	settings, err := c.SettingsService.All()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// UpdateSettings godoc
// @Summary Upsert application settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param settings body map[string]string true "key/value pairs"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Router /api/admin/settings [put]
func (c *AdminController) UpdateSettings(ctx *gin.Context) {
	var values map[string]string
	if err := ctx.ShouldBindJSON(&values); err != nil {
		util.BadRequest(ctx, "request body must be a string map")
		return
	}
	if len(values) == 0 {
		util.BadRequest(ctx, "no settings provided")
		return
	}

	if err := c.SettingsService.SetMany(values); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": len(values)})
}

type blockUserRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// BlockUser godoc
// @Summary Block or unblock a user
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body blockUserRequest true "blocked flag"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/users/{id}/block [patch]
func (c *AdminController) BlockUser(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req blockUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "blocked flag is required")
		return
	}

	if err := c.UserService.SetBlocked(userID, *req.Blocked); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"userId": userID, "blocked": *req.Blocked})
}

type badgeRequest struct {
	Name          string `json:"name" binding:"required"`
	Icon          string `json:"icon"`
	CriteriaType  string `json:"criteriaType" binding:"required"`
	CriteriaValue int    `json:"criteriaValue" binding:"required,min=1"`
}

func (r *badgeRequest) criteria() (model.BadgeCriteria, bool) {
	switch ct := model.BadgeCriteria(r.CriteriaType); ct {
	case model.CriteriaXP, model.CriteriaQuizzes, model.CriteriaTopics, model.CriteriaStreak:
		return ct, true
	default:
		return "", false
	}
}

// CreateBadge godoc
// @Summary Add a badge to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param badge body badgeRequest true "badge definition"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Router /api/admin/badges [post]
func (c *AdminController) CreateBadge(ctx *gin.Context) {
	var req badgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	criteria, ok := req.criteria()
	if !ok {
		util.BadRequest(ctx, "criteriaType must be one of xp, quizzes, topics, streak")
		return
	}

	badge := &model.Badge{
		Name:          req.Name,
		Icon:          req.Icon,
		CriteriaType:  criteria,
		CriteriaValue: req.CriteriaValue,
	}
	if err := c.BadgeRepo.Create(badge); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, badge)
}

// UpdateBadge godoc
// @Summary Update a badge definition
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "badge id"
// @Param badge body badgeRequest true "badge definition"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Router /api/admin/badges/{id} [put]
func (c *AdminController) UpdateBadge(ctx *gin.Context) {
	badgeID := util.MustParseUint(ctx.Param("id"))
	if badgeID == 0 {
		util.BadRequest(ctx, "invalid badge id")
		return
	}

	var req badgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	criteria, ok := req.criteria()
	if !ok {
		util.BadRequest(ctx, "criteriaType must be one of xp, quizzes, topics, streak")
		return
	}

	badge, err := c.BadgeRepo.FindByID(badgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	badge.Name = req.Name
	badge.Icon = req.Icon
	badge.CriteriaType = criteria
	badge.CriteriaValue = req.CriteriaValue
	if err := c.BadgeRepo.Update(badge); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badge)
}
