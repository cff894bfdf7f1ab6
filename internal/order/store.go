package order

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNoItems = errors.New("order must contain at least one item")

// StatusPending is the only status this ledger assigns; no transition logic
// exists.
const StatusPending = "pending"

type Item struct {
	ProductName string
	Quantity    int32
	Price       float64
}

type Order struct {
	ID          int64
	UserID      int64
	Items       []Item
	TotalAmount float64
	Status      string
	CreatedAt   time.Time
}

// Store is the in-memory table of record for orders. IDs are assigned
// sequentially starting at 1 and never reused.
type Store struct {
	mu     sync.Mutex
	orders map[int64]Order
	ids    []int64 // insertion order, for stable scans
	nextID int64
}

func NewStore() *Store {
	return &Store{
		orders: make(map[int64]Order),
		nextID: 1,
	}
}

// Create computes the total, assigns the next ID and inserts, all under one
// lock. The caller is responsible for having validated the user.
func (s *Store) Create(userID int64, items []Item) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrNoItems
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := Order{
		ID:          s.nextID,
		UserID:      userID,
		Items:       append([]Item(nil), items...),
		TotalAmount: totalAmount(items),
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.orders[o.ID] = o
	s.ids = append(s.ids, o.ID)
	return o, nil
}

// Get returns the order by ID.
func (s *Store) Get(id int64) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	return o, ok
}

// ListByUser scans the whole table in insertion order. A user with no
// orders yields an empty slice.
func (s *Store) ListByUser(userID int64) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Order
	for _, id := range s.ids {
		if o := s.orders[id]; o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// Len reports how many orders are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// totalAmount sums quantity×price with decimal arithmetic so currency-like
// sums stay exact before they go back to the wire as a double.
func totalAmount(items []Item) float64 {
	total := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt32(it.Quantity))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}
