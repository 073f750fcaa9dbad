package employees

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Finder ищет сотрудников гаража, квалифицированных для направления
type Finder struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewFinder создает новый экземпляр поиска сотрудников
func NewFinder(employeeRepo EmployeeRepository, logger Logger) *Finder {
	return &Finder{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Find возвращает всех сотрудников гаража с ролью, соответствующей направлению
// Результат упорядочен по ID; пустой список - не ошибка
func (f *Finder) Find(ctx context.Context, garageID uuid.UUID, area domain.Area) ([]*domain.Employee, error) {
	return f.FindExcluding(ctx, garageID, area, uuid.Nil)
}

// FindExcluding то же, что Find, но без сотрудника excludeID (переназначение)
func (f *Finder) FindExcluding(ctx context.Context, garageID uuid.UUID, area domain.Area, excludeID uuid.UUID) ([]*domain.Employee, error) {
	// Невалидное направление отбрасываем до запроса в БД
	if !area.IsValid() {
		f.logger.Warn("FindEmployees: invalid area=%q for garage=%s", area, garageID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidArea, area)
	}

	employees, err := f.employeeRepo.GetByGarageAndRole(ctx, garageID, area.Role())
	if err != nil {
		f.logger.Error("FindEmployees: repository error for garage=%s, area=%s: %v", garageID, area, err)
		return nil, fmt.Errorf("%w: FindExcluding - repository error: %w", ErrInternal, err)
	}

	result := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		if e.ID == excludeID || !e.CanServe(garageID, area) {
			continue
		}
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return bytes.Compare(result[i].ID[:], result[j].ID[:]) < 0
	})

	f.logger.Info("FindEmployees: garage=%s, area=%s, candidates=%d", garageID, area, len(result))
	return result, nil
}
