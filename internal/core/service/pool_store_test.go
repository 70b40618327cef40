package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
)

func TestPoolStore_Load(t *testing.T) {
	cases := []struct {
		name   string
		stored *string
		want   []domain.EmployeeID
	}{
		{"absent", nil, nil},
		{"empty string", ptr(""), nil},
		{"not json", ptr("{not json"), nil},
		{"object", ptr(`{"ids":[1,2]}`), nil},
		{"empty array", ptr(`[]`), nil},
		{"integers in stored order", ptr(`[3,1,2]`), []domain.EmployeeID{3, 1, 2}},
		{"mixed entries", ptr(`[1,"a",null,2.5,{"id":4},3,true]`), []domain.EmployeeID{1, 3}},
		{"zero is kept", ptr(`[0,5]`), []domain.EmployeeID{0, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newStubKV()
			if tc.stored != nil {
				kv.data[domain.KeyPoolIDs] = *tc.stored
			}
			got := NewPoolStore(kv, zerolog.Nop()).Load(context.Background())
			if !slices.Equal(got, tc.want) {
				t.Errorf("Load() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPoolStore_Load_ReadError(t *testing.T) {
	kv := newStubKV()
	kv.getErr = errors.New("storage disabled")
	if got := NewPoolStore(kv, zerolog.Nop()).Load(context.Background()); len(got) != 0 {
		t.Errorf("expected empty pool on read error, got %v", got)
	}
}

func TestPoolStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, ids := range [][]domain.EmployeeID{
		{},
		{1},
		{9, 4, 4, 7},
		{0, 1 << 40},
	} {
		store := NewPoolStore(newStubKV(), zerolog.Nop())
		store.Save(ctx, ids)
		got := store.Load(ctx)
		if len(ids) == 0 {
			if len(got) != 0 {
				t.Errorf("round trip of empty list = %v", got)
			}
			continue
		}
		if !slices.Equal(got, ids) {
			t.Errorf("round trip of %v = %v", ids, got)
		}
	}
}

func TestPoolStore_Save_EncodesJSONArray(t *testing.T) {
	kv := newStubKV()
	NewPoolStore(kv, zerolog.Nop()).Save(context.Background(), nil)
	if kv.data[domain.KeyPoolIDs] != "[]" {
		t.Errorf("stored %q, want []", kv.data[domain.KeyPoolIDs])
	}
}

func TestPoolStore_Save_WriteErrorSwallowed(t *testing.T) {
	kv := newStubKV()
	kv.setErr = errors.New("quota exceeded")
	// Must not panic or surface an error.
	NewPoolStore(kv, zerolog.Nop()).Save(context.Background(), []domain.EmployeeID{1, 2})
	if _, ok := kv.data[domain.KeyPoolIDs]; ok {
		t.Error("nothing should have been stored")
	}
}

func TestPoolStore_NilStore(t *testing.T) {
	var s *PoolStore
	s.Save(context.Background(), []domain.EmployeeID{1})
	if got := s.Load(context.Background()); got != nil {
		t.Errorf("nil store Load() = %v", got)
	}
}

func ptr(s string) *string { return &s }
