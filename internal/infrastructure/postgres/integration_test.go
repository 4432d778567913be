package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// Requiere una base de datos desechable: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE bookings, buses, admins, users`)
	require.NoError(t, err)
	return pool
}

func newBus(t *testing.T, pool *pgxpool.Pool, capacity int) *entity.Bus {
	t.Helper()
	now := time.Now().UTC()
	b := &entity.Bus{ID: uuid.NewString(), StartStation: "Cali", EndStation: "Pasto", SeatsAvailable: capacity, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, NewBusRepository(pool).Create(context.Background(), b))
	return b
}

func TestIntegration_ConcurrentBookingsNeverOverbook(t *testing.T) {
	pool := testPool(t)
	bus := newBus(t, pool, 10)
	engine := booking.NewEngineUseCase(NewTxRunner(pool, 2000), nil, booking.EngineConfig{
		MaxAttempts: 3, TxTimeout: 5 * time.Second, BookingIDAttempts: 10,
	}, nil)
	rider := &entity.Principal{ID: uuid.NewString(), Name: "Ana", Email: "ana@x.co", Role: entity.RoleUser}

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.Book(context.Background(), booking.BookInput{BusID: bus.ID, Seats: 6, Rider: rider})
		}(i)
	}
	wg.Wait()

	var ok, exceeded int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrCapacityExceeded):
			exceeded++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, exceeded)

	got, err := NewBusRepository(pool).GetByID(context.Background(), bus.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.SeatsFilled)
}

func TestIntegration_RollbackLeavesNoBooking(t *testing.T) {
	pool := testPool(t)
	bus := newBus(t, pool, 10)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTxRunner(pool, 0).RunBooking(ctx, func(busRepo repository.BusRepository, bookingRepo repository.BookingRepository) error {
		require.NoError(t, bookingRepo.Create(ctx, &entity.Booking{
			ID: uuid.NewString(), BookingID: "123456789", BusID: bus.ID, UserName: "Ana", UserEmail: "ana@x.co",
			StartStation: bus.StartStation, EndStation: bus.EndStation, SeatsBooked: 2, CreatedAt: time.Now().UTC(),
		}))
		require.NoError(t, busRepo.IncrementFilled(ctx, bus.ID, 2))
		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := NewBookingRepository(pool).ExistsByBookingID(ctx, "123456789")
	require.NoError(t, err)
	assert.False(t, exists)
	got, err := NewBusRepository(pool).GetByID(ctx, bus.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SeatsFilled)
}

func TestIntegration_UpdateCapacity(t *testing.T) {
	pool := testPool(t)
	bus := newBus(t, pool, 10)
	repo := NewBusRepository(pool)
	ctx := context.Background()
	require.NoError(t, repo.IncrementFilled(ctx, bus.ID, 7))

	_, err := repo.UpdateCapacity(ctx, bus.ID, 6)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowBooked)

	missing, err := repo.UpdateCapacity(ctx, uuid.NewString(), 6)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := repo.UpdateCapacity(ctx, bus.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.SeatsAvailable)
	assert.ErrorIs(t, repo.IncrementFilled(ctx, bus.ID, 1), domain.ErrCapacityExceeded)
}

func TestIntegration_AdminKeyUniqueness(t *testing.T) {
	pool := testPool(t)
	repo := NewAdminRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC()
	a1 := &entity.Admin{ID: uuid.NewString(), Name: "A", Email: "a@x.co", PasswordHash: "h", APIKey: "111111111", CreatedAt: now, UpdatedAt: now}
	a2 := &entity.Admin{ID: uuid.NewString(), Name: "B", Email: "b@x.co", PasswordHash: "h", APIKey: "222222222", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))

	dupEmail := *a1
	dupEmail.ID, dupEmail.APIKey = uuid.NewString(), "333333333"
	assert.ErrorIs(t, repo.Create(ctx, &dupEmail), domain.ErrEmailAlreadyExists)

	assert.ErrorIs(t, repo.UpdateAPIKey(ctx, a1.ID, "222222222"), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.UpdateAPIKey(ctx, uuid.NewString(), "444444444"), domain.ErrNotFound)
	require.NoError(t, repo.UpdateAPIKey(ctx, a1.ID, "444444444"))
}
