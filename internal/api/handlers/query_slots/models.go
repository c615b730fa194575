package query_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/slots/models"
)

// Тексты нарушений валидации
// Все нарушения собираются в один ответ, без остановки на первом
const (
	msgProductsRequired = "At least one product must be specified."
	msgLanguageRequired = "Language is not specified."
	msgRatingRequired   = "Rating is not specified."
	msgDateRequired     = "Date is not specified or invalid."
)

// dateLayouts поддерживаемые форматы поля date
// Принимаем как чистую дату, так и ISO-8601 datetime; используется только
// календарный день
var dateLayouts = []string{
	domain.DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// QueryRequest HTTP request model
type QueryRequest struct {
	Date     string   `json:"date"`
	Products []string `json:"products"`
	Language string   `json:"language"`
	Rating   string   `json:"rating"`
}

// AvailableSlotResponse HTTP response model
type AvailableSlotResponse struct {
	StartDate      string `json:"start_date"`
	AvailableCount int    `json:"available_count"`
}

// Validate проверяет обязательные поля запроса
// Возвращает список ВСЕХ нарушений; пустой список означает валидный запрос
func (r *QueryRequest) Validate() []string {
	errs := make([]string, 0)

	if len(r.Products) == 0 {
		errs = append(errs, msgProductsRequired)
	}

	if r.Rating == "" {
		errs = append(errs, msgRatingRequired)
	}

	if r.Language == "" {
		errs = append(errs, msgLanguageRequired)
	}

	if _, err := r.parseDate(); err != nil {
		errs = append(errs, msgDateRequired)
	}

	return errs
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Вызывать только после успешной валидации
func (r *QueryRequest) ToServiceRequest() (*models.Request, error) {
	date, err := r.parseDate()
	if err != nil {
		return nil, err
	}

	return &models.Request{
		Date:     date,
		Products: r.Products,
		Language: r.Language,
		Rating:   r.Rating,
	}, nil
}

// parseDate парсит поле date, перебирая поддерживаемые форматы
func (r *QueryRequest) parseDate() (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, r.Date)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
// Временные метки форматируются в UTC с миллисекундами (yyyy-MM-ddTHH:mm:ss.sssZ)
func FromServiceResponse(resp *models.Response) []AvailableSlotResponse {
	result := make([]AvailableSlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		result[i] = AvailableSlotResponse{
			StartDate:      slot.StartDate.UTC().Format(domain.ResponseTimeFormat),
			AvailableCount: slot.AvailableCount,
		}
	}
	return result
}
