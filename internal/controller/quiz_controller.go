package controller

import (
	"errors"
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"
	"levelup_backend/pkg/logger"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizController struct {
	QuizService  *service.QuizService
	BadgeService *service.BadgeService
}

func NewQuizController(quizService *service.QuizService, badgeService *service.BadgeService) *QuizController {
	return &QuizController{
		QuizService:  quizService,
		BadgeService: badgeService,
	}
}

// ListQuizzes godoc
// @Summary Published quizzes
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.GetQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary One quiz with its questions, correct answers excluded
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("id"))
	if quizID == 0 {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	quiz, err := c.QuizService.GetQuizForTaking(quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quiz)
}

// SubmitQuiz godoc
// @Summary Grade a quiz submission and award XP
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "quiz id"
// @Param body body service.SubmitQuizRequest true "answer indices"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID := util.MustParseUint(ctx.Param("id"))
	if quizID == 0 {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req service.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(user.UserID, quizID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// A submission may have pushed the user over a badge threshold.
	// Awarding is idempotent, so running it off the request path is safe.
	userID := user.UserID
	go func() {
		if _, err := c.BadgeService.CheckBadges(userID); err != nil {
			logger.Log.Warn("badge check after quiz submit failed",
				zap.Uint("userId", userID), zap.Error(err))
		}
	}()

	util.Success(ctx, result)
}

// ListAttempts godoc
// @Summary The current user's recent quiz attempts
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max entries" default(20)
// @Success 200 {object} util.Response
// @Router /api/quizzes/attempts [get]
func (c *QuizController) ListAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	attempts, err := c.QuizService.GetUserAttempts(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
