package controller

import (
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// ListBadges godoc
// @Summary The full badge catalog
// @Tags badge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	badges, err := c.BadgeService.GetCatalog()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// MyBadges godoc
// @Summary Badges earned by the current user
// @Tags badge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/user/badges [get]
func (c *BadgeController) MyBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.GetUserBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// CheckBadges godoc
// @Summary Evaluate badge criteria and award any newly earned badges
// @Tags badge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/badges/check [post]
func (c *BadgeController) CheckBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	newBadges, err := c.BadgeService.CheckBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"newBadges": newBadges})
}
