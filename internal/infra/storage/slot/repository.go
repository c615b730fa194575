package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения доступных слотов
// Сервис работает с хранилищем только на чтение: слоты и профили менеджеров
// создаются внешней системой бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAvailableSlots возвращает агрегированную доступность на указанную дату
//
// Для каждого времени начала слота считается количество РАЗЛИЧНЫХ менеджеров,
// у которых:
//   - есть свободный (не забронированный) слот, начинающийся в эту дату
//   - профиль покрывает запрошенные продукты (superset), язык и рейтинг
//   - нет ДРУГОГО забронированного слота, пересекающегося с этим слотом
//
// Пересечение интервалов строгое: [start, end) пересекаются, только если
// start < other.end И end > other.start. Слоты в хранилище генерируются
// фиксированными гранулами и между собой не пересекаются, но anti-join
// сохраняем: он дешёвый и фиксирует инвариант занятости менеджера
func (r *Repository) GetAvailableSlots(
	ctx context.Context,
	date time.Time,
	products []string,
	language string,
	rating string,
) ([]domain.AvailableSlot, error) {
	query, args, err := buildAvailableSlotsQuery(date, products, language, rating)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.AvailableSlot, 0)
	for rows.Next() {
		var slot domain.AvailableSlot
		if err := rows.Scan(&slot.StartDate, &slot.AvailableCount); err != nil {
			return nil, fmt.Errorf("%w: GetAvailableSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailableSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// buildAvailableSlotsQuery строит SQL запрос доступности
// Вынесено отдельно, чтобы сгенерированный SQL можно было проверить юнит-тестами
func buildAvailableSlotsQuery(
	date time.Time,
	products []string,
	language string,
	rating string,
) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"s.start_date",
		"COUNT(DISTINCT s.sales_manager_id) AS available_count",
	).
		From("slots s").
		Join("sales_managers sm ON sm.id = s.sales_manager_id").
		LeftJoin("slots bs ON bs.sales_manager_id = s.sales_manager_id" +
			" AND bs.booked" +
			" AND s.start_date < bs.end_date AND s.end_date > bs.start_date").
		Where("s.start_date::date = ?", date.Format(domain.DateFormat)).
		Where("NOT s.booked").
		Where("sm.languages @> ?::varchar[]", pq.Array([]string{language})).
		Where("sm.products @> ?::varchar[]", pq.Array(products)).
		Where("sm.customer_ratings @> ?::varchar[]", pq.Array([]string{rating})).
		Where("bs.id IS NULL").
		GroupBy("s.start_date").
		OrderBy("s.start_date ASC").
		ToSql()
}
