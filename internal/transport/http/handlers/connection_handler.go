package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/domain"
	"devlink/internal/service"
	"devlink/internal/transport/http/middleware"
)

type ConnectionHandler struct {
	connService *service.ConnectionService
	logger      *zerolog.Logger
}

func NewConnectionHandler(connService *service.ConnectionService, logger *zerolog.Logger) *ConnectionHandler {
	return &ConnectionHandler{connService: connService, logger: logger}
}

func (h *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	status := domain.ConnectionStatus(r.PathValue("status"))
	if !domain.SendStatus(status) {
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be ignored or interested")
		return
	}

	targetID, err := bson.ObjectIDFromHex(r.PathValue("toUserId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "ID is not valid")
		return
	}

	conn, err := h.connService.SendRequest(r.Context(), userID, targetID, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrCannotConnectSelf):
			writeError(w, http.StatusBadRequest, "CANNOT_CONNECT_SELF", "Cannot send a connection request to yourself")
		case errors.Is(err, service.ErrConnectionExists):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "Connection already exists")
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be ignored or interested")
		default:
			h.logger.Error().Err(err).Msg("send connection request failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, conn)
}

func (h *ConnectionHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	decision := domain.ConnectionStatus(r.PathValue("status"))
	if !domain.ReviewStatus(decision) {
		writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be accepted or rejected")
		return
	}

	requestID, err := bson.ObjectIDFromHex(r.PathValue("requestId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "ID is not valid")
		return
	}

	conn, err := h.connService.ReviewRequest(r.Context(), userID, requestID, decision)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Connection request not found")
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Status must be accepted or rejected")
		default:
			h.logger.Error().Err(err).Msg("review connection request failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, conn)
}

func (h *ConnectionHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reqs, err := h.connService.ListPendingReceived(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("list pending requests failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": reqs})
}

func (h *ConnectionHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	conns, err := h.connService.ListConnections(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("list connections failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": conns})
}
