package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-ParkingService/internal/service/tickets/models"
)

// Service read-сервис для работы с талонами. Мутации состояния выполняют
// usecases въезда и выезда; сервис только читает реестр под разделяемой
// блокировкой.
type Service struct {
	ticketRepo TicketRepository
	txManager  TransactionManager
	logger     Logger
}

// NewService создает новый экземпляр сервиса талонов
func NewService(
	ticketRepo TicketRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// GetByID получает талон по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.TicketResponse, error) {
	s.logger.Info("GetByID: fetching ticket id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: ticket id is required", ErrInvalidInput)
	}

	var resp *models.TicketResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		t, err := s.ticketRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, ticketRepo.ErrTicketNotFound) {
				s.logger.Warn("GetByID: ticket id=%s not found", id)
				return ErrTicketNotFound
			}
			s.logger.Error("GetByID: repository error for ticket id=%s: %v", id, err)
			return fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}
		resp = models.FromDomainTicket(t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched ticket id=%s", id)
	return resp, nil
}

// List получает талоны с фильтрацией по статусу и госномеру.
// Результат отсортирован в порядке выдачи талонов.
func (s *Service) List(ctx context.Context, req *models.ListTicketsRequest) (*models.TicketListResponse, error) {
	s.logger.Info("List: fetching tickets, status=%v, plate=%v", req.Status, req.LicensePlate)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status=%v", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var resp *models.TicketListResponse
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.ticketRepo.List(txCtx, filter)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
		resp = models.FromDomainTicketList(list)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: successfully fetched %d tickets", len(resp.Tickets))
	return resp, nil
}
