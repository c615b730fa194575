package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     time.Time // Дата, на которую запрашивается доступность
	Products []string  // Запрошенные продукты (менеджер должен покрывать все)
	Language string    // Язык клиента
	Rating   string    // Рейтинг клиента
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []AvailableSlot
}

// AvailableSlot временной слот с количеством свободных менеджеров
type AvailableSlot struct {
	StartDate      time.Time // Время начала слота (UTC)
	AvailableCount int       // Количество различных свободных менеджеров
}

// FromDomainSlots конвертирует доменные слоты в ответ сервиса
// Временные метки нормализуются в UTC
func FromDomainSlots(slots []domain.AvailableSlot) *Response {
	result := make([]AvailableSlot, len(slots))
	for i, slot := range slots {
		result[i] = AvailableSlot{
			StartDate:      slot.StartDate.UTC(),
			AvailableCount: slot.AvailableCount,
		}
	}
	return &Response{Slots: result}
}
