package loadbalancer

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Balancer выбирает наименее загруженного сотрудника
type Balancer struct {
	counter AppointmentCounter
	logger  Logger
}

// NewBalancer создает новый экземпляр балансировщика
func NewBalancer(counter AppointmentCounter, logger Logger) *Balancer {
	return &Balancer{
		counter: counter,
		logger:  logger,
	}
}

// Select выбирает сотрудника для даты:
//  1. минимум записей на дату;
//  2. при равенстве - минимум записей за неделю (понедельник - воскресенье);
//  3. при равенстве - наименьший ID.
func (b *Balancer) Select(ctx context.Context, candidates []*domain.Employee, date time.Time) (*domain.Employee, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	day := domain.DateOnly(date)

	// 1. Загрузка на дату
	daily, err := b.count(ctx, candidates, day, day)
	if err != nil {
		return nil, err
	}
	remaining := keepMinimum(candidates, daily)

	// 2. Загрузка за неделю - только если остались равные
	if len(remaining) > 1 {
		weekly, err := b.count(ctx, remaining, domain.WeekStart(day), domain.WeekEnd(day))
		if err != nil {
			return nil, err
		}
		remaining = keepMinimum(remaining, weekly)
	}

	// 3. Детерминированный выбор при полном равенстве
	selected := remaining[0]
	for _, e := range remaining[1:] {
		if bytes.Compare(e.ID[:], selected.ID[:]) < 0 {
			selected = e
		}
	}

	b.logger.Info("SelectEmployee: date=%s, candidates=%d, tied=%d, selected=%s, daily=%d",
		day.Format(domain.DateFormat), len(candidates), len(remaining), selected.ID, daily[selected.ID])

	return selected, nil
}

func (b *Balancer) count(ctx context.Context, employees []*domain.Employee, from, to time.Time) (map[uuid.UUID]int, error) {
	ids := make([]uuid.UUID, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}

	counts, err := b.counter.CountByEmployeesAndPeriod(ctx, ids, from, to)
	if err != nil {
		b.logger.Error("SelectEmployee: failed to count appointments for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: count appointments: %w", ErrInternal, err)
	}
	return counts, nil
}

// keepMinimum оставляет сотрудников с минимальным значением; отсутствие в map - ноль
func keepMinimum(employees []*domain.Employee, counts map[uuid.UUID]int) []*domain.Employee {
	lowest := -1
	for _, e := range employees {
		if c := counts[e.ID]; lowest < 0 || c < lowest {
			lowest = c
		}
	}

	result := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		if counts[e.ID] == lowest {
			result = append(result, e)
		}
	}
	return result
}
