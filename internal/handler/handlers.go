// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/handler/http"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/render"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions session.Store, renderer render.Renderer, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, sessions, renderer, cfg.App.SessionCookieName, logger),
	}

	return handlers, nil
}
