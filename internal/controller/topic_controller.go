package controller

import (
	"errors"
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	TopicService *service.TopicService
}

func NewTopicController(topicService *service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

// ListTopics godoc
// @Summary Published topics with the caller's completion status
// @Tags topic
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/topics [get]
func (c *TopicController) ListTopics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topics, err := c.TopicService.GetTopics(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// CompleteTopic godoc
// @Summary Mark a topic completed and award its XP
// @Tags topic
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "topic id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.ErrorResponse
// @Router /api/topics/{id}/complete [post]
func (c *TopicController) CompleteTopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	topicID := util.MustParseUint(ctx.Param("id"))
	if topicID == 0 {
		util.BadRequest(ctx, "invalid topic id")
		return
	}

	result, err := c.TopicService.CompleteTopic(user.UserID, topicID)
	if err != nil {
		if errors.Is(err, util.ErrTopicNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
