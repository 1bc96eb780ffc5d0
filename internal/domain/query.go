package domain

// TutorFilters represents the full filter state of a tutor search.
// Day/time filtering is evaluated locally against fetched schedules,
// price/language/search are pushed down to the tutor directory service
type TutorFilters struct {
	Selection       DayTimeSelection
	Price           PriceRange
	PrimaryLanguage *string
	SearchTerm      *string
}

// Equal returns true if both filter states are identical
func (f TutorFilters) Equal(other TutorFilters) bool {
	if !f.Selection.Equal(other.Selection) {
		return false
	}
	if f.Price != other.Price {
		return false
	}
	if !equalStringPtr(f.PrimaryLanguage, other.PrimaryLanguage) {
		return false
	}
	return equalStringPtr(f.SearchTerm, other.SearchTerm)
}

// PageQuery represents one paginated tutor-directory query
// Invariant: Page >= 1; any filter change resets Page to 1
type PageQuery struct {
	Page     int
	PageSize int
	Filters  TutorFilters
}

// NewPageQuery builds a first-page query with the given filters
func NewPageQuery(filters TutorFilters, pageSize int) PageQuery {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return PageQuery{
		Page:     1,
		PageSize: pageSize,
		Filters:  normalizeFilters(filters),
	}
}

// WithPage returns a copy of the query on the given page
// Страница меньше 1 приводится к 1
func (q PageQuery) WithPage(page int) PageQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// WithFilters returns a copy with the filters replaced and the page reset.
// Любое изменение фильтров принудительно возвращает на первую страницу
func (q PageQuery) WithFilters(filters TutorFilters) PageQuery {
	q.Filters = normalizeFilters(filters)
	q.Page = 1
	return q
}

// TotalPages computes the page count for the given total
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// ClampPage clamps a requested page to [1, totalPages]
// При пустом результате (totalPages == 0) остается первая страница
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

func normalizeFilters(filters TutorFilters) TutorFilters {
	filters.Price = filters.Price.Normalized()
	return filters
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
