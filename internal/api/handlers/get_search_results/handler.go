package get_search_results

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgInvalidPage      = "некорректный номер страницы"
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

// Handle GET /api/v1/search-sessions/{sessionId}/results
// Query params: page (опционально; без него - текущая страница сессии)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем sessionId из URL
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("GET /search-sessions/{id}/results - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	// Извлекаем page из query параметров
	var page *int
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.Warn("GET /search-sessions/{id}/results - Invalid page: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		page = &parsed
	}

	// Вызываем сервис
	state, err := h.service.GetResults(r.Context(), sessionID, page)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrSessionNotFound):
			h.logger.Warn("GET /search-sessions/{id}/results - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /search-sessions/{id}/results - Failed to get results: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /search-sessions/{id}/results - Results retrieved: session=%s, page=%d", sessionID, state.Page)
	handlers.RespondJSON(w, http.StatusOK, FromSessionState(state))
}
