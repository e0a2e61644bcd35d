package pricing

import (
	"errors"
	"testing"

	"liveaboard-booking/models"
)

func offer(paid, free int) models.ParsedOffer {
	return models.ParsedOffer{RequiredPaid: paid, BonusFree: free}
}

func TestFreeUnits(t *testing.T) {
	cases := []struct {
		paid, free, pax, want int
	}{
		{7, 1, 8, 1},
		{7, 1, 15, 1}, // 15 guests hold one full block of 8
		{7, 1, 16, 2},
		{7, 1, 6, 0},
		{7, 1, 7, 0},
		{4, 1, 10, 2},
		{8, 2, 20, 4},
		{0, 0, 10, 0},
	}
	for _, tc := range cases {
		if got := offer(tc.paid, tc.free).FreeUnits(tc.pax); got != tc.want {
			t.Errorf("FreeUnits(pax=%d, req=%d, bonus=%d) = %d, want %d", tc.pax, tc.paid, tc.free, got, tc.want)
		}
	}
}

func TestSelectBestOfferNoneApplies(t *testing.T) {
	got, err := SelectBestOffer([]models.ParsedOffer{offer(7, 1), offer(10, 2)}, 6)
	if err != nil || got != nil {
		t.Fatalf("expected no offer for 6 pax, got %+v, err=%v", got, err)
	}
	got, err = SelectBestOffer(nil, 20)
	if err != nil || got != nil {
		t.Fatalf("expected no offer from an empty set, got %+v, err=%v", got, err)
	}
}

func TestSelectBestOfferOrdering(t *testing.T) {
	cases := []struct {
		name   string
		offers []models.ParsedOffer
		pax    int
		want   models.ParsedOffer
	}{
		{
			name:   "most free units wins",
			offers: []models.ParsedOffer{offer(7, 1), offer(4, 1)},
			pax:    10,
			want:   offer(4, 1),
		},
		{
			name:   "free units beat efficiency",
			offers: []models.ParsedOffer{offer(3, 4), offer(1, 1)},
			pax:    10,
			want:   offer(1, 1),
		},
		{
			name:   "efficiency breaks free-unit ties",
			offers: []models.ParsedOffer{offer(9, 1), offer(7, 1)},
			pax:    10,
			want:   offer(7, 1),
		},
		{
			name:   "bonus breaks efficiency ties",
			offers: []models.ParsedOffer{offer(4, 1), offer(8, 2)},
			pax:    10,
			want:   offer(8, 2),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SelectBestOffer(tc.offers, tc.pax)
			if err != nil {
				t.Fatal(err)
			}
			if got == nil || got.RequiredPaid != tc.want.RequiredPaid || got.BonusFree != tc.want.BonusFree {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSelectBestOfferFullTieKeepsInputOrder(t *testing.T) {
	a := models.ParsedOffer{Source: "Group 7+1 FOC", RequiredPaid: 7, BonusFree: 1}
	b := models.ParsedOffer{Source: "Charter 7+1", RequiredPaid: 7, BonusFree: 1}
	for i := 0; i < 5; i++ {
		got, err := SelectBestOffer([]models.ParsedOffer{a, b}, 16)
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Source != a.Source {
			t.Fatalf("run %d: expected first of two identical offers, got %+v", i, got)
		}
	}
}

func TestSelectBestOfferNegativePax(t *testing.T) {
	if _, err := SelectBestOffer([]models.ParsedOffer{offer(7, 1)}, -1); !errors.Is(err, ErrInvalidPax) {
		t.Fatalf("expected ErrInvalidPax, got %v", err)
	}
}
