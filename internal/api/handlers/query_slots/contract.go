package query_slots

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/slots/models"
)

// SlotsService интерфейс сервиса получения доступных слотов
type SlotsService interface {
	GetAvailableSlots(ctx context.Context, req *models.Request) (*models.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
