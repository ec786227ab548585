package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Repository in-memory реестр парковочных талонов.
// Талоны никогда не удаляются: закрытие только меняет статус и заполняет
// ClosedAt/AmountDue, закрытые талоны остаются доступными для выборок.
// Реестр владеет памятью записей: наружу отдаются копии, внутрь сохраняются
// копии. Блокировок не выполняет - вызовы идут под транзакционным
// менеджером сервиса.
type Repository struct {
	byID       map[string]*domain.Ticket
	openBySpot map[int64]string
	order      []string // идентификаторы в порядке выдачи
}

// NewRepository создает пустой реестр талонов.
func NewRepository() *Repository {
	return &Repository{
		byID:       make(map[string]*domain.Ticket),
		openBySpot: make(map[int64]string),
	}
}

// Create сохраняет новый открытый талон.
// Возвращает ErrSpotTaken, если на место уже есть открытый талон:
// инвариант "не более одного открытого талона на место" проверяется
// и на уровне хранилища.
func (r *Repository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if _, ok := r.byID[t.ID]; ok {
		return nil, fmt.Errorf("%w: id=%s", ErrTicketExists, t.ID)
	}
	if openID, ok := r.openBySpot[t.SpotID]; ok {
		return nil, fmt.Errorf("%w: spot id=%d is held by ticket id=%s", ErrSpotTaken, t.SpotID, openID)
	}

	stored := *t
	r.byID[stored.ID] = &stored
	r.openBySpot[stored.SpotID] = stored.ID
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

// GetByID возвращает талон по идентификатору.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrTicketNotFound, id)
	}
	out := *stored
	return &out, nil
}

// GetOpenBySpot возвращает открытый талон на указанное место.
func (r *Repository) GetOpenBySpot(ctx context.Context, spotID int64) (*domain.Ticket, error) {
	id, ok := r.openBySpot[spotID]
	if !ok {
		return nil, fmt.Errorf("%w: no open ticket for spot id=%d", ErrTicketNotFound, spotID)
	}
	return r.GetByID(ctx, id)
}

// FindOpenByPlate возвращает открытый талон по госномеру.
func (r *Repository) FindOpenByPlate(ctx context.Context, licensePlate string) (*domain.Ticket, error) {
	for _, id := range r.order {
		stored := r.byID[id]
		if stored.Status == domain.StatusOpen && stored.LicensePlate == licensePlate {
			out := *stored
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: no open ticket for plate=%s", ErrTicketNotFound, licensePlate)
}

// List возвращает талоны по фильтру в порядке выдачи.
func (r *Repository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	result := make([]*domain.Ticket, 0)
	for _, id := range r.order {
		stored := r.byID[id]
		if filter.Status != nil && stored.Status != *filter.Status {
			continue
		}
		if filter.LicensePlate != nil && stored.LicensePlate != *filter.LicensePlate {
			continue
		}
		if filter.SpotID != nil && stored.SpotID != *filter.SpotID {
			continue
		}
		out := *stored
		result = append(result, &out)
	}
	return result, nil
}

// Close закрывает талон: проставляет время выезда и сумму к оплате.
// Запись не удаляется, меняется только статус и поля закрытия.
func (r *Repository) Close(ctx context.Context, id string, closedAt time.Time, amount types.Money) (*domain.Ticket, error) {
	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrTicketNotFound, id)
	}
	if stored.Status == domain.StatusClosed {
		return nil, fmt.Errorf("%w: id=%s", ErrTicketAlreadyClosed, id)
	}

	closedAtCopy := closedAt
	amountCopy := amount
	stored.Status = domain.StatusClosed
	stored.ClosedAt = &closedAtCopy
	stored.AmountDue = &amountCopy
	delete(r.openBySpot, stored.SpotID)

	out := *stored
	return &out, nil
}
