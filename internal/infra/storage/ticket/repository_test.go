package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func newTicket(id, plate string, spotID int64) *domain.Ticket {
	return &domain.Ticket{
		ID:           id,
		LicensePlate: plate,
		VehicleType:  domain.VehicleCar,
		SpotID:       spotID,
		LevelNumber:  1,
		SpotType:     domain.SpotCompact,
		Status:       domain.StatusOpen,
		IssuedAt:     time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)
	assert.Equal(t, "t-1", created.ID)

	got, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "A001AA", got.LicensePlate)
	assert.True(t, got.IsOpen())

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestRepository_Create_SpotInvariant(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)

	// Второй открытый талон на то же место недопустим
	_, err = repo.Create(ctx, newTicket("t-2", "B002BB", 101))
	assert.ErrorIs(t, err, ErrSpotTaken)

	// Дубликат идентификатора недопустим
	_, err = repo.Create(ctx, newTicket("t-1", "C003CC", 102))
	assert.ErrorIs(t, err, ErrTicketExists)
}

func TestRepository_Close(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)

	closedAt := time.Date(2025, 10, 15, 12, 0, 1, 0, time.UTC)
	closed, err := repo.Close(ctx, "t-1", closedAt, types.Money(2000))
	require.NoError(t, err)
	assert.True(t, closed.IsClosed())
	require.NotNil(t, closed.ClosedAt)
	assert.Equal(t, closedAt, *closed.ClosedAt)
	require.NotNil(t, closed.AmountDue)
	assert.Equal(t, types.Money(2000), *closed.AmountDue)

	// Повторное закрытие отклоняется, сумма не меняется
	_, err = repo.Close(ctx, "t-1", closedAt.Add(time.Hour), types.Money(9999))
	assert.ErrorIs(t, err, ErrTicketAlreadyClosed)

	got, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, types.Money(2000), *got.AmountDue)

	// Закрытый талон остаётся в реестре
	all, err := repo.List(ctx, domain.TicketFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Место снова можно выдавать
	_, err = repo.Create(ctx, newTicket("t-2", "B002BB", 101))
	assert.NoError(t, err)
}

func TestRepository_FindOpenByPlate(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)

	got, err := repo.FindOpenByPlate(ctx, "A001AA")
	require.NoError(t, err)
	assert.Equal(t, "t-1", got.ID)

	_, err = repo.FindOpenByPlate(ctx, "X000XX")
	assert.ErrorIs(t, err, ErrTicketNotFound)

	// После закрытия открытого талона по номеру нет
	_, err = repo.Close(ctx, "t-1", time.Now(), 0)
	require.NoError(t, err)
	_, err = repo.FindOpenByPlate(ctx, "A001AA")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestRepository_List_Filters(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTicket("t-2", "B002BB", 102))
	require.NoError(t, err)
	_, err = repo.Close(ctx, "t-1", time.Now(), types.Money(1000))
	require.NoError(t, err)

	open, err := repo.List(ctx, domain.TicketFilter{Status: ptr.Ptr(domain.StatusOpen)})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "t-2", open[0].ID)

	byPlate, err := repo.List(ctx, domain.TicketFilter{LicensePlate: ptr.Ptr("A001AA")})
	require.NoError(t, err)
	require.Len(t, byPlate, 1)
	assert.Equal(t, "t-1", byPlate[0].ID)

	// Порядок выдачи сохраняется
	all, err := repo.List(ctx, domain.TicketFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "t-1", all[0].ID)
	assert.Equal(t, "t-2", all[1].ID)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTicket("t-1", "A001AA", 101))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	got.LicensePlate = "HACKED"

	again, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "A001AA", again.LicensePlate)
}
