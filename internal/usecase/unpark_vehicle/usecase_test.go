package unpark_vehicle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/pool"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	"github.com/m04kA/SMC-ParkingService/internal/strategy"
	"github.com/m04kA/SMC-ParkingService/pkg/memtxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type testEnv struct {
	uc    *UseCase
	lot   *pool.Lot
	repo  *ticketRepo.Repository
	clock *fakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	levels := []*domain.Level{
		{Number: 1, Spots: []*domain.Spot{
			{ID: 101, LevelNumber: 1, Type: domain.SpotCompact},
			{ID: 102, LevelNumber: 1, Type: domain.SpotLarge},
		}},
	}
	lot, err := pool.NewLot("test", levels, domain.DefaultCompatRule())
	require.NoError(t, err)

	repo := ticketRepo.NewRepository()
	clock := &fakeClock{now: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)}

	// Тариф 10.00 за час без скидок и налога
	invoice := strategy.NewInvoice(strategy.NewHourlyRate(types.Money(1000), time.Hour), nil, 0)

	uc := NewUseCase(lot, repo, invoice, memtxmanager.NewTransactionManager(), nopLogger{})
	uc.timeProvider = clock

	return &testEnv{uc: uc, lot: lot, repo: repo, clock: clock}
}

// issueTicket выдаёт открытый талон и занимает место, имитируя въезд
func (e *testEnv) issueTicket(t *testing.T, id, plate string, spotID int64, issuedAt time.Time) {
	t.Helper()
	require.NoError(t, e.lot.MarkOccupied(spotID))
	_, err := e.repo.Create(context.Background(), &domain.Ticket{
		ID:           id,
		LicensePlate: plate,
		VehicleType:  domain.VehicleCar,
		SpotID:       spotID,
		LevelNumber:  1,
		SpotType:     domain.SpotCompact,
		Status:       domain.StatusOpen,
		IssuedAt:     issuedAt,
	})
	require.NoError(t, err)
}

func TestUseCase_Execute_BillsCeilingRule(t *testing.T) {
	env := newTestEnv(t)
	issuedAt := env.clock.now
	env.issueTicket(t, "t-1", "car-1", 101, issuedAt)

	// Через 3601 секунду выезд стоит две единицы тарифа
	env.clock.now = issuedAt.Add(3601 * time.Second)

	resp, err := env.uc.Execute(context.Background(), &Request{TicketID: "t-1"})
	require.NoError(t, err)
	assert.Equal(t, types.Money(2000), resp.AmountDue)
	assert.Equal(t, "20.00", resp.AmountDue.String())
	assert.Equal(t, int64(101), resp.SpotID)
	assert.Equal(t, issuedAt, resp.IssuedAt)
	assert.Equal(t, env.clock.now, resp.ClosedAt)

	// Место освобождено
	assert.Equal(t, 2, env.lot.CountAvailable(domain.VehicleCar))
}

func TestUseCase_Execute_ExactHourBillsOneUnit(t *testing.T) {
	env := newTestEnv(t)
	issuedAt := env.clock.now
	env.issueTicket(t, "t-1", "car-1", 101, issuedAt)

	env.clock.now = issuedAt.Add(3600 * time.Second)

	resp, err := env.uc.Execute(context.Background(), &Request{TicketID: "t-1"})
	require.NoError(t, err)
	assert.Equal(t, types.Money(1000), resp.AmountDue)
}

func TestUseCase_Execute_DoubleReleaseRejected(t *testing.T) {
	env := newTestEnv(t)
	issuedAt := env.clock.now
	env.issueTicket(t, "t-1", "car-1", 101, issuedAt)

	env.clock.now = issuedAt.Add(time.Hour)
	first, err := env.uc.Execute(context.Background(), &Request{TicketID: "t-1"})
	require.NoError(t, err)

	// Второй выезд по тому же талону отклоняется, сумма не меняется
	env.clock.now = issuedAt.Add(10 * time.Hour)
	_, err = env.uc.Execute(context.Background(), &Request{TicketID: "t-1"})
	assert.ErrorIs(t, err, ErrTicketAlreadyClosed)

	stored, err := env.repo.GetByID(context.Background(), "t-1")
	require.NoError(t, err)
	require.NotNil(t, stored.AmountDue)
	assert.Equal(t, first.AmountDue, *stored.AmountDue)

	// Повторное закрытие не трогает занятость места
	assert.Equal(t, 2, env.lot.CountAvailable(domain.VehicleCar))
}

func TestUseCase_Execute_TicketNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{TicketID: "missing"})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{TicketID: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RoundTripRestoresAvailability(t *testing.T) {
	env := newTestEnv(t)
	issuedAt := env.clock.now

	before := env.lot.CountAvailable(domain.VehicleCar)
	env.issueTicket(t, "t-1", "car-1", 101, issuedAt)
	assert.Equal(t, before-1, env.lot.CountAvailable(domain.VehicleCar))

	env.clock.now = issuedAt.Add(time.Minute)
	_, err := env.uc.Execute(context.Background(), &Request{TicketID: "t-1"})
	require.NoError(t, err)

	assert.Equal(t, before, env.lot.CountAvailable(domain.VehicleCar))
}
