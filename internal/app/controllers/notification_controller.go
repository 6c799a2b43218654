package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/pkg/websocket"
)

// NotificationController upgrades connections to the notification websocket
type NotificationController struct {
	upgrader *websocket.Upgrader
	logger   zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(upgrader *websocket.Upgrader, logger zerolog.Logger) *NotificationController {
	return &NotificationController{upgrader: upgrader, logger: logger}
}

// Connect opens the notification stream of the caller
// @Summary Notification websocket
// @Description Upgrades to a websocket that receives the caller's notifications. Browsers pass the access token as the token query parameter.
// @Tags notifications
// @Security BearerAuth
// @Param token query string false "Access token"
// @Success 101 "Switching protocols"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /notifications/ws [get]
func (c *NotificationController) Connect(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	// Upgrade writes its own error response
	if err := c.upgrader.Serve(ctx.Writer, ctx.Request, p.UserID); err != nil {
		c.logger.Warn().Err(err).Str("userID", p.UserID.String()).Msg("Websocket upgrade failed")
	}
}
