package pricing

import (
	"errors"
	"testing"
)

func TestCalculateCommission(t *testing.T) {
	cases := []struct {
		name                            string
		total, foc                      string
		pax                             int
		wantRate, wantAmount, wantFinal string
	}{
		{"two guests no offer", "1000", "0", 2, "0.10", "100", "900"},
		{"foc discount granted", "1000", "50", 2, "0.15", "150", "850"},
		{"three or more guests", "1000", "0", 3, "0.15", "150", "850"},
		{"rounds half away from zero", "1005", "0", 1, "0.10", "101", "904"},
		{"empty booking", "0", "0", 0, "0.10", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateCommission(dec(tc.total), dec(tc.foc), tc.pax)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Rate.Equal(dec(tc.wantRate)) || !got.Amount.Equal(dec(tc.wantAmount)) || !got.FinalAmount.Equal(dec(tc.wantFinal)) {
				t.Fatalf("got rate=%s amount=%s final=%s, want %s/%s/%s",
					got.Rate, got.Amount, got.FinalAmount, tc.wantRate, tc.wantAmount, tc.wantFinal)
			}
		})
	}
}

func TestCalculateCommissionNegativePax(t *testing.T) {
	if _, err := CalculateCommission(dec("100"), dec("0"), -2); !errors.Is(err, ErrInvalidPax) {
		t.Fatalf("expected ErrInvalidPax, got %v", err)
	}
}
