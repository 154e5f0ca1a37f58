package controller

import (
	"crypto/subtle"

	"levelup_backend/internal/config"
	"levelup_backend/internal/service"
	"levelup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CronController exposes the weekly reset to an external scheduler.
// Calls authenticate with a shared secret header instead of a JWT.
type CronController struct {
	ResetService *service.ResetService
	Config       *config.Config
}

func NewCronController(resetService *service.ResetService, cfg *config.Config) *CronController {
	return &CronController{ResetService: resetService, Config: cfg}
}

// WeeklyReset godoc
// @Summary Run the weekly reset if it is due
// @Tags cron
// @Produce json
// @Param X-Cron-Secret header string true "shared cron secret"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.ErrorResponse
// @Router /cron/weekly-reset [get]
func (c *CronController) WeeklyReset(ctx *gin.Context) {
	secret := ctx.GetHeader("X-Cron-Secret")
	if c.Config.Cron.Secret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(c.Config.Cron.Secret)) != 1 {
		util.Unauthorized(ctx)
		return
	}

	outcome, err := c.ResetService.MaybeRun(false)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}
