package create_search_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	"github.com/m04kA/TMP-SearchService/internal/api/middleware"
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

const (
	msgMissingUser    = "пользователь не аутентифицирован"
	msgInvalidRequest = "некорректный запрос"
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

// Handle POST /api/v1/search-sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// ID пользователя кладет auth middleware
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /search-sessions - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	state, err := h.service.CreateSession(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidInput):
			h.logger.Warn("POST /search-sessions - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /search-sessions - Failed to create session: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /search-sessions - Session created: session=%s, user_id=%d", state.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromSessionState(state))
}
