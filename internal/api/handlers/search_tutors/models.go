package search_tutors

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/TMP-SearchService/internal/domain"
	searchTutors "github.com/m04kA/TMP-SearchService/internal/usecase/search_tutors"
)

// TutorsResponse HTTP response model
type TutorsResponse struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalCount int         `json:"totalCount"`
	TotalPages int         `json:"totalPages"`
	WeekStart  string      `json:"weekStart"`
	Items      []TutorItem `json:"items"`
}

// TutorItem модель репетитора в выдаче
type TutorItem struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	PrimaryLanguage string   `json:"primaryLanguage"`
	Languages       []string `json:"languages"`
	MinLessonPrice  *float64 `json:"minLessonPrice,omitempty"`
	Rating          float64  `json:"rating"`
	LessonsCount    int      `json:"lessonsCount"`
	About           string   `json:"about"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
// Query params: page, days (CSV меток дней), blocks (CSV меток блоков),
// priceMin, priceMax, language, search - все опциональные
func ToUseCaseRequest(query url.Values) (*searchTutors.Request, error) {
	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid page %q", raw)
		}
		page = parsed
	}

	days, err := parseDays(query.Get("days"))
	if err != nil {
		return nil, err
	}

	blocks, err := parseBlocks(query.Get("blocks"))
	if err != nil {
		return nil, err
	}

	price, err := parsePriceRange(query.Get("priceMin"), query.Get("priceMax"))
	if err != nil {
		return nil, err
	}

	req := &searchTutors.Request{
		Page:      page,
		Selection: domain.NewDayTimeSelection(days, blocks),
		Price:     price,
	}

	if language := strings.TrimSpace(query.Get("language")); language != "" {
		req.Language = &language
	}
	if search := strings.TrimSpace(query.Get("search")); search != "" {
		req.SearchTerm = &search
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchTutors.Response) *TutorsResponse {
	items := make([]TutorItem, len(resp.Items))
	for i, tutor := range resp.Items {
		items[i] = TutorItem{
			ID:              tutor.ID,
			Name:            tutor.Name,
			PrimaryLanguage: tutor.PrimaryLanguage,
			Languages:       tutor.Languages,
			MinLessonPrice:  tutor.MinLessonPrice,
			Rating:          tutor.Rating,
			LessonsCount:    tutor.LessonsCount,
			About:           tutor.About,
		}
	}

	return &TutorsResponse{
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalCount: resp.TotalCount,
		TotalPages: resp.TotalPages,
		WeekStart:  resp.WeekStart.Format(domain.DateFormat),
		Items:      items,
	}
}

func parseDays(raw string) ([]domain.DayOfWeek, error) {
	if raw == "" {
		return nil, nil
	}

	var days []domain.DayOfWeek
	for _, label := range strings.Split(raw, ",") {
		day, err := domain.ParseDayLabel(label)
		if err != nil {
			return nil, fmt.Errorf("invalid day label %q", label)
		}
		days = append(days, day)
	}
	return days, nil
}

func parseBlocks(raw string) ([]domain.TimeBlock, error) {
	if raw == "" {
		return nil, nil
	}

	var blocks []domain.TimeBlock
	for _, label := range strings.Split(raw, ",") {
		block, err := domain.ParseTimeBlock(label)
		if err != nil {
			return nil, fmt.Errorf("invalid time block label %q", label)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// parsePriceRange собирает ценовой диапазон из пары параметров
// Отсутствие обоих параметров - отсутствие ценового фильтра
func parsePriceRange(rawMin, rawMax string) (*domain.PriceRange, error) {
	if rawMin == "" && rawMax == "" {
		return nil, nil
	}

	price := domain.UnconstrainedPriceRange()

	if rawMin != "" {
		min, err := strconv.ParseFloat(rawMin, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid priceMin %q", rawMin)
		}
		price.Min = min
	}

	if rawMax != "" {
		max, err := strconv.ParseFloat(rawMax, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid priceMax %q", rawMax)
		}
		price.Max = max
	}

	return &price, nil
}
