package get_tutor_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TMP-SearchService/internal/api/handlers"
	getWeekAvailability "github.com/m04kA/TMP-SearchService/internal/usecase/get_week_availability"
)

const (
	msgInvalidTutorID = "некорректный ID репетитора"
)

type Handler struct {
	useCase GetWeekAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors/{tutorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем tutorId из URL
	tutorIDStr := vars["tutorId"]
	tutorID, err := strconv.ParseInt(tutorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tutors/{id}/schedule - Invalid tutor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTutorID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getWeekAvailability.Request{TutorID: tutorID})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getWeekAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tutors/{id}/schedule - Invalid input: tutor_id=%d", tutorID)
			handlers.RespondBadRequest(w, msgInvalidTutorID)

		default:
			h.logger.Error("GET /tutors/{id}/schedule - Failed to get schedule: tutor_id=%d, error=%v",
				tutorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tutors/{id}/schedule - Schedule retrieved: tutor_id=%d, known=%t",
		tutorID, result.ScheduleKnown)
	handlers.RespondJSON(w, http.StatusOK, response)
}
