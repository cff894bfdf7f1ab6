package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateComputesExactTotal(t *testing.T) {
	s := NewStore()

	o, err := s.Create(1, []Item{
		{ProductName: "Laptop", Quantity: 1, Price: 999.99},
		{ProductName: "Mouse", Quantity: 2, Price: 25.50},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), o.ID)
	require.Equal(t, 1050.99, o.TotalAmount)
	require.Equal(t, StatusPending, o.Status)
	require.False(t, o.CreatedAt.IsZero())
}

func TestTotalIndependentOfItemOrder(t *testing.T) {
	items := []Item{
		{ProductName: "A", Quantity: 3, Price: 0.10},
		{ProductName: "B", Quantity: 1, Price: 0.20},
		{ProductName: "C", Quantity: 7, Price: 19.99},
	}
	reversed := []Item{items[2], items[1], items[0]}

	a, err := NewStore().Create(1, items)
	require.NoError(t, err)
	b, err := NewStore().Create(1, reversed)
	require.NoError(t, err)

	require.Equal(t, a.TotalAmount, b.TotalAmount)
	require.Equal(t, 140.43, a.TotalAmount)
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	s := NewStore()

	_, err := s.Create(1, nil)
	require.ErrorIs(t, err, ErrNoItems)
	require.Equal(t, 0, s.Len())
}

func TestGetAbsent(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(7)
	require.False(t, ok)
}

func TestListByUserInsertionOrder(t *testing.T) {
	s := NewStore()

	mk := func(userID int64) Order {
		o, err := s.Create(userID, []Item{{ProductName: "X", Quantity: 1, Price: 1}})
		require.NoError(t, err)
		return o
	}
	first := mk(1)
	mk(2)
	second := mk(1)
	third := mk(1)

	got := s.ListByUser(1)
	require.Len(t, got, 3)
	require.Equal(t, []int64{first.ID, second.ID, third.ID},
		[]int64{got[0].ID, got[1].ID, got[2].ID})

	require.Empty(t, s.ListByUser(42))
}
