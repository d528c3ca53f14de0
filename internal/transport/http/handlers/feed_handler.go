package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"devlink/internal/service"
	"devlink/internal/transport/http/middleware"
)

type FeedHandler struct {
	feedService *service.FeedService
	logger      *zerolog.Logger
}

func NewFeedHandler(feedService *service.FeedService, logger *zerolog.Logger) *FeedHandler {
	return &FeedHandler{feedService: feedService, logger: logger}
}

func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	limit := parsePositiveInt(r.URL.Query().Get("limit"), service.DefaultFeedPageSize)

	feed, err := h.feedService.GetFeed(r.Context(), userID, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			h.logger.Error().Err(err).Msg("get feed failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, feed)
}

// parsePositiveInt falls back to def for absent, malformed or non-positive
// values.
func parsePositiveInt(raw string, def int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return def
	}
	return value
}
