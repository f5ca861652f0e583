// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/render"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/session"
)

type Handler struct {
	services *service.Services
	sessions session.Store
	renderer render.Renderer

	// sessionCookieName is the cookie carrying the opaque session token.
	sessionCookieName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, renderer render.Renderer, sessionCookieName string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		sessions:          sessions,
		renderer:          renderer,
		sessionCookieName: sessionCookieName,
		logger:            logger,
	}
}
