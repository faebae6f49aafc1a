package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// addFlash queues a message shown on the next rendered page
func addFlash(ctx *gin.Context, message string) {
	session := sessions.Default(ctx)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to save flash message")
	}
}

// popFlashes returns and clears the queued messages
func popFlashes(ctx *gin.Context) []string {
	session := sessions.Default(ctx)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to clear flash messages")
	}

	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		messages = append(messages, fmt.Sprint(f))
	}
	return messages
}

// page builds template data with the common layout fields set
func page(ctx *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Flashes"] = popFlashes(ctx)
	return data
}

// bindError classifies a form or query binding failure. An oversized body keeps its
// own error so it maps to 413; anything else is a bad request.
func bindError(err error) error {
	if middleware.IsBodyTooLarge(err) {
		return err
	}
	return errors.Join(apperrors.ErrBadRequest, err)
}
