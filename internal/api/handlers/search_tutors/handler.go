package search_tutors

import (
	"errors"
	"net/http"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

const (
	msgInvalidQuery         = "некорректные параметры поиска"
	msgDirectoryUnavailable = "каталог репетиторов временно недоступен"
)

type Handler struct {
	useCase SearchTutorsUseCase
	logger  Logger
}

func NewHandler(useCase SearchTutorsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors
// Query params: page, days (CSV), blocks (CSV), priceMin, priceMax,
// language, search - все опциональные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Формируем запрос к use case из query параметров
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /tutors - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, searchTutors.ErrInvalidInput):
			h.logger.Warn("GET /tutors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, searchTutors.ErrDirectoryUnavailable):
			h.logger.Error("GET /tutors - Directory unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /tutors - Failed to search tutors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tutors - Page retrieved: page=%d, items=%d, total=%d",
		result.Page, len(result.Items), result.TotalCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
