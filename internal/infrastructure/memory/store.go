package memory

import (
	"sync"

	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/repository"
)

// Store almacén en proceso (STORE_DRIVER=memory). Mismos contratos que el adaptador de
// PostgreSQL; los datos se pierden al reiniciar. Cada reserva copia buses y reservas
// (cloneInventory), así que su costo crece con el tamaño del almacén: es un driver de desarrollo.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{data: newState()}
}

// Users repositorio de pasajeros.
func (s *Store) Users() repository.UserRepository { return &UserRepo{r: shared{s}} }

// Admins repositorio de administradores.
func (s *Store) Admins() repository.AdminRepository { return &AdminRepo{r: shared{s}} }

// Buses repositorio de buses fuera de transacción.
func (s *Store) Buses() repository.BusRepository { return &BusRepo{r: shared{s}} }

// Bookings repositorio de reservas fuera de transacción.
func (s *Store) Bookings() repository.BookingRepository { return &BookingRepo{r: shared{s}} }

// state tablas indexadas. bookings se indexa por booking_id.
type state struct {
	users    map[string]*entity.User
	admins   map[string]*entity.Admin
	buses    map[string]*entity.Bus
	bookings map[string]*entity.Booking
}

func newState() *state {
	return &state{
		users:    make(map[string]*entity.User),
		admins:   make(map[string]*entity.Admin),
		buses:    make(map[string]*entity.Bus),
		bookings: make(map[string]*entity.Booking),
	}
}

// cloneInventory copia buses y reservas, las únicas tablas que escribe una transacción de reserva.
func (st *state) cloneInventory() *state {
	c := &state{
		users:    st.users,
		admins:   st.admins,
		buses:    make(map[string]*entity.Bus, len(st.buses)),
		bookings: make(map[string]*entity.Booking, len(st.bookings)),
	}
	for k, v := range st.buses {
		b := *v
		c.buses[k] = &b
	}
	for k, v := range st.bookings {
		b := *v
		c.bookings[k] = &b
	}
	return c
}

// runner da acceso al estado: compartido con bloqueo, o la copia de trabajo de una transacción.
type runner interface {
	view(fn func(*state) error) error
	update(fn func(*state) error) error
}

type shared struct{ s *Store }

func (r shared) view(fn func(*state) error) error {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return fn(r.s.data)
}

func (r shared) update(fn func(*state) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(r.s.data)
}

// inTx opera sobre la copia de trabajo; el bloqueo ya lo tiene RunBooking.
type inTx struct{ st *state }

func (r inTx) view(fn func(*state) error) error   { return fn(r.st) }
func (r inTx) update(fn func(*state) error) error { return fn(r.st) }
