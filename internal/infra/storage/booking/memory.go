package booking

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

// MemoryRepository хранит бронирования в памяти процесса.
// Все операции проходят через один мьютекс, наружу отдаются только копии.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byRef  map[string]*domain.Booking
	order  []string // порядок создания для List
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		byRef:  make(map[string]*domain.Booking),
	}
}

// Create сохраняет новое бронирование и назначает ему ID
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byRef[booking.Reference]; exists {
		return nil, ErrDuplicateReference
	}

	stored := booking.Clone()
	stored.ID = r.nextID
	r.nextID++

	r.byRef[stored.Reference] = stored
	r.order = append(r.order, stored.Reference)

	return stored.Clone(), nil
}

// GetByReference получает бронирование по номеру
func (r *MemoryRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byRef[reference]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return booking.Clone(), nil
}

// Update атомарно применяет fn к копии бронирования и сохраняет результат.
// Если fn вернула ошибку, хранилище не меняется.
func (r *MemoryRepository) Update(ctx context.Context, reference string, fn MutateFunc) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byRef[reference]
	if !ok {
		return nil, ErrBookingNotFound
	}

	draft := current.Clone()
	if err := fn(draft); err != nil {
		return nil, err
	}

	// ID и номер не меняются ни при каких изменениях
	draft.ID = current.ID
	draft.Reference = current.Reference
	draft.CreatedAt = current.CreatedAt

	r.byRef[reference] = draft

	return draft.Clone(), nil
}

// List возвращает бронирования в порядке создания
func (r *MemoryRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.Booking, 0, len(r.order))
	for _, ref := range r.order {
		b := r.byRef[ref]
		if filter.Matches(b) {
			bookings = append(bookings, b.Clone())
		}
	}

	return bookings, nil
}
