package slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/slots/models"
)

// Service сервис получения доступных слотов
// Тонкая обёртка над репозиторием: нормализация в UTC и логирование ошибок,
// без кеширования, ретраев и бизнес-трансформаций
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetAvailableSlots возвращает доступные слоты на дату по фильтру запроса
// Ошибки хранилища логируются с полными деталями и пробрасываются выше
// обёрнутыми в ErrInternal
func (s *Service) GetAvailableSlots(ctx context.Context, req *models.Request) (*models.Response, error) {
	s.logger.Info("GetAvailableSlots: date=%s, products=%v, language=%s, rating=%s",
		req.Date.Format(domain.DateFormat), req.Products, req.Language, req.Rating)

	slots, err := s.slotRepo.GetAvailableSlots(ctx, req.Date, req.Products, req.Language, req.Rating)
	if err != nil {
		s.logger.Error("GetAvailableSlots: failed to retrieve available slots: date=%s, products=%v, language=%s, rating=%s, error=%v",
			req.Date.Format(domain.DateFormat), req.Products, req.Language, req.Rating, err)
		return nil, fmt.Errorf("%w: GetAvailableSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAvailableSlots: found %d available slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return models.FromDomainSlots(slots), nil
}
