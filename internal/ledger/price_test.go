package ledger

import (
	"testing"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		r    model.Reservation
		want float64
	}{
		{
			name: "two clients three nights with breakfast",
			r:    model.Reservation{Clients: []model.Client{goku, vegeta}, Duration: 3, Breakfast: true},
			want: 150.0,
		},
		{
			name: "two clients three nights",
			r:    model.Reservation{Clients: []model.Client{goku, vegeta}, Duration: 3},
			want: 120.0,
		},
		{
			name: "one client one night",
			r:    model.Reservation{Clients: []model.Client{krillin}, Duration: 1},
			want: 20.0,
		},
		{
			name: "no clients",
			r:    model.Reservation{Duration: 5, Breakfast: true},
			want: 0,
		},
		{
			name: "zero nights",
			r:    model.Reservation{Clients: []model.Client{goku}, Breakfast: true},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.r); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceIgnoresNames(t *testing.T) {
	a := model.Reservation{Clients: []model.Client{goku, vegeta}, Duration: 4, Breakfast: true}
	b := model.Reservation{Clients: []model.Client{krillin, bulma}, Duration: 4, Breakfast: true}
	if Price(a) != Price(b) {
		t.Errorf("renaming clients changed price: %v vs %v", Price(a), Price(b))
	}
}

func TestPriceIsLinear(t *testing.T) {
	base := model.Reservation{Clients: []model.Client{goku}, Duration: 2}
	unit := Price(base)

	for n := 1; n <= 4; n++ {
		r := base
		r.Clients = make([]model.Client, n)
		if got, want := Price(r), unit*float64(n); got != want {
			t.Errorf("%d clients: got %v, want %v", n, got, want)
		}
		r = base
		r.Duration = 2 * n
		if got, want := Price(r), unit*float64(n); got != want {
			t.Errorf("%d nights: got %v, want %v", 2*n, got, want)
		}
	}
}

func TestBreakfastFactor(t *testing.T) {
	r := model.Reservation{Clients: []model.Client{goku, vegeta, krillin}, Duration: 7}
	without := Price(r)
	r.Breakfast = true
	if got := Price(r); got != without*1.25 {
		t.Errorf("got %v, want %v", got, without*1.25)
	}
}

func TestCalculateReservationPriceDoesNotNeedMembership(t *testing.T) {
	m := New(hotel)
	r := model.Reservation{ID: 99, Clients: []model.Client{goku, vegeta}, Duration: 3, Breakfast: true}
	if got := m.CalculateReservationPrice(r); got != 150.0 {
		t.Errorf("got %v, want 150", got)
	}
	if m.Len() != 0 || m.NextID() != 1 {
		t.Error("pricing must not touch ledger state")
	}
}
