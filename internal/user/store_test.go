package user

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	for i := 1; i <= 3; i++ {
		u, err := s.Create(fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@example.com", i), "")
		require.NoError(t, err)
		require.Equal(t, int64(i), u.ID)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	s := NewStore()

	cases := []struct {
		name  string
		email string
	}{
		{"", "a@example.com"},
		{"Alice", ""},
		{"", ""},
	}
	for _, c := range cases {
		_, err := s.Create(c.name, c.email, "")
		require.ErrorIs(t, err, ErrMissingData)
	}
	require.Equal(t, 0, s.Len())
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewStore()

	_, err := s.Create("Alice", "alice@example.com", "")
	require.NoError(t, err)

	_, err = s.Create("Alice Again", "alice@example.com", "")
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Equal(t, 1, s.Len())

	// exact match only: a different case is a different email
	_, err = s.Create("Alice Upper", "Alice@example.com", "")
	require.NoError(t, err)
}

func TestGetReturnsStoredFields(t *testing.T) {
	s := NewStore()

	created, err := s.Create("John Doe", "john@example.com", "+1234567890")
	require.NoError(t, err)

	got, ok := s.Get(created.ID)
	require.True(t, ok)
	require.Equal(t, created, got)

	_, ok = s.Get(999)
	require.False(t, ok)
}

func TestGetManyPreservesRequestOrder(t *testing.T) {
	s := NewStore()

	for i := 1; i <= 3; i++ {
		_, err := s.Create(fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@example.com", i), "")
		require.NoError(t, err)
	}

	found, missing := s.GetMany([]int64{3, 42, 1, 7})
	require.Len(t, found, 2)
	require.Equal(t, int64(3), found[0].ID)
	require.Equal(t, int64(1), found[1].ID)
	require.Equal(t, []int64{42, 7}, missing)
}

func TestConcurrentCreateAssignsDistinctContiguousIDs(t *testing.T) {
	const n = 50

	s := NewStore()
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := s.Create(fmt.Sprintf("User %d", i), fmt.Sprintf("u%d@example.com", i), "")
			if err != nil {
				t.Error(err)
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		require.GreaterOrEqual(t, id, int64(1))
		require.LessOrEqual(t, id, int64(n))
		seen[id] = true
	}
	require.Len(t, seen, n)
}

func TestConcurrentCreateSerializesEmailCheck(t *testing.T) {
	const n = 20

	s := NewStore()

	var wg sync.WaitGroup
	var mu sync.Mutex
	okCount := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Create("Dup", "dup@example.com", ""); err == nil {
				mu.Lock()
				okCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, okCount)
	require.Equal(t, 1, s.Len())
}
