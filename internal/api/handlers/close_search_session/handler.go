package close_search_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия поиска не найдена"
)

type Handler struct {
	service SearchSessionService
	logger  Logger
}

func NewHandler(service SearchSessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/search-sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем sessionId из URL
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("DELETE /search-sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	// Вызываем сервис
	if err := h.service.CloseSession(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, search.ErrSessionNotFound):
			h.logger.Warn("DELETE /search-sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /search-sessions/{id} - Failed to close session: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /search-sessions/{id} - Session closed: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
