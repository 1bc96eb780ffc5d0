package create_search_session

import (
	"github.com/m04kA/TMP-SearchService/internal/service/search"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	Page      int    `json:"page"`
}

// FromSessionState конвертирует снапшот сессии в HTTP response
// Свежесозданная сессия результатов еще не имеет
func FromSessionState(state *search.SessionState) *SessionResponse {
	return &SessionResponse{
		SessionID: state.ID.String(),
		Page:      state.Page,
	}
}
