package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/devserver"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
)

type Handler struct {
	backend *devserver.Backend
	hub     *devserver.Hub
	cfg     *config.ServerConfig

	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(backend *devserver.Backend, hub *devserver.Hub, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: backend,
		hub:     hub,
		cfg:     cfg,
		// devserver обслуживает только локального клиента
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		logger:   logger,
	}
}
