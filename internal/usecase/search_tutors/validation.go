package search_tutors

import (
	"fmt"

	"github.com/m04kA/TMP-SearchService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}

	if req.SearchTerm != nil && len(*req.SearchTerm) > domain.MaxSearchTermLength {
		return fmt.Errorf("%w: search term is too long (max %d)", ErrInvalidInput, domain.MaxSearchTermLength)
	}

	if req.Language != nil && *req.Language == "" {
		return fmt.Errorf("%w: language must not be empty", ErrInvalidInput)
	}

	return nil
}
