package update_search_filters

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFilters     = "некорректные фильтры"
	msgSessionNotFound    = "сессия поиска не найдена"
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

// Handle PUT /api/v1/search-sessions/{sessionId}/filters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем sessionId из URL
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("PUT /search-sessions/{id}/filters - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req UpdateFiltersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /search-sessions/{id}/filters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом меток)
	update, err := req.ToFiltersUpdate()
	if err != nil {
		h.logger.Warn("PUT /search-sessions/{id}/filters - Invalid filters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilters)
		return
	}

	// Вызываем сервис
	state, err := h.service.UpdateFilters(r.Context(), sessionID, update)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrSessionNotFound):
			h.logger.Warn("PUT /search-sessions/{id}/filters - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, search.ErrInvalidInput):
			h.logger.Warn("PUT /search-sessions/{id}/filters - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("PUT /search-sessions/{id}/filters - Failed to update filters: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /search-sessions/{id}/filters - Filters updated: session=%s, page=%d", sessionID, state.Page)
	handlers.RespondJSON(w, http.StatusOK, FromSessionState(state))
}
