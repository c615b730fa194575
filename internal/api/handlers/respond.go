package handlers

import (
	"encoding/json"
	"net/http"
)

// Фиксированные тексты problem-документов
// Детали внутренних ошибок клиенту не раскрываются
const (
	validationType   = "Invalid Request"
	validationTitle  = "Invalid request parameters."
	validationDetail = "The request contains missing or invalid parameters."

	internalType   = "Internal Server Error"
	internalTitle  = "Internal Server Error"
	internalDetail = "An unexpected error occurred while processing your request."
)

// ProblemDetails problem-документ ошибки в теле ответа
type ProblemDetails struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Status  int      `json:"status"`
	Detail  string   `json:"detail"`
	Errors  []string `json:"errors,omitempty"`
	TraceID string   `json:"traceId,omitempty"`
}

// DecodeJSON декодирует JSON тело запроса в модель
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON отправляет успешный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondValidationError отправляет 400 со списком ВСЕХ нарушений валидации
func RespondValidationError(w http.ResponseWriter, errs []string) {
	RespondJSON(w, http.StatusBadRequest, &ProblemDetails{
		Type:   validationType,
		Title:  validationTitle,
		Status: http.StatusBadRequest,
		Detail: validationDetail,
		Errors: errs,
	})
}

// RespondInternalError отправляет 500 с фиксированным detail и trace
// идентификатором для корреляции с серверными логами
func RespondInternalError(w http.ResponseWriter, traceID string) {
	RespondJSON(w, http.StatusInternalServerError, &ProblemDetails{
		Type:    internalType,
		Title:   internalTitle,
		Status:  http.StatusInternalServerError,
		Detail:  internalDetail,
		TraceID: traceID,
	})
}
