package controller

import (
	"errors"
	"fmt"
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	UserService    *service.UserService
	StreakService  *service.StreakService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, streakService *service.StreakService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StreakService:  streakService,
		StorageService: storageService,
	}
}

// GetProfile godoc
// @Summary Current user's profile with progression stats
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.UserService.UpdateProfile(user.UserID, req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, updated)
}

// UploadAvatar godoc
// @Summary Upload a new avatar image
// @Tags user
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("avatars/%d/%s%s", user.UserID, uuid.New().String(), ext)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.UserService.SetAvatar(user.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

// TouchStreak godoc
// @Summary Record a qualifying activity for the daily streak
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/user/streak [post]
func (c *UserController) TouchStreak(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.StreakService.Touch(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetActivity godoc
// @Summary Recent activity feed for the current user
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max entries" default(50)
// @Success 200 {object} util.Response
// @Router /api/user/activity [get]
func (c *UserController) GetActivity(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	activities, err := c.UserService.GetActivity(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}
