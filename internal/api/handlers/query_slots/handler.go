package query_slots

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
)

const msgInvalidRequestBody = "Request body is missing or malformed."

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /calendar/query
// Body: {"date": "...", "products": ["..."], "language": "...", "rating": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/query - Invalid request body: %v", err)
		handlers.RespondValidationError(w, []string{msgInvalidRequestBody})
		return
	}

	// Собираем все нарушения валидации в один ответ
	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warn("POST /calendar/query - Validation failed: %v", errs)
		handlers.RespondValidationError(w, errs)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		// Недостижимо после валидации, но оставляем защиту от рассинхронизации
		h.logger.Warn("POST /calendar/query - Failed to parse request: %v", err)
		handlers.RespondValidationError(w, []string{msgDateRequired})
		return
	}

	result, err := h.service.GetAvailableSlots(r.Context(), serviceReq)
	if err != nil {
		traceID := middleware.GetRequestID(r.Context())
		h.logger.Error("POST /calendar/query - Failed to get available slots: date=%s, trace_id=%s, error=%v",
			req.Date, traceID, err)
		handlers.RespondInternalError(w, traceID)
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("POST /calendar/query - Slots retrieved successfully: date=%s, slots_count=%d",
		req.Date, len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
