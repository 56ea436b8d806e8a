package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// WebSocketServer upgrades a request into a change-feed subscription.
type WebSocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type FeedHandler struct {
	hub WebSocketServer
}

func NewFeedHandler(hub WebSocketServer) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Subscribe godoc
// @Summary Realtime change feed (websocket)
// @Description Streams ChangeEvent JSON messages for lots, history, ledger, obligations and settlement prompts.
// @Tags feed
// @Router /feed [get]
func (h *FeedHandler) Subscribe(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		// the upgrader has already written the HTTP error
		log.Warn().Err(err).Msg("[feed][handler] websocket upgrade failed")
	}
}
