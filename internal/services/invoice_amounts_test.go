package services

import (
	"math"
	"reflect"
	"testing"

	"voyago/internal/domain/models"
)

func priceOf(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeAmountsWorkedExample(t *testing.T) {
	booking := models.Booking{BookingAmount: "2000", TotalParticipants: 2}
	exp := &models.Experience{Price: priceOf(1180)}

	got := ComputeAmounts(booking, exp, nil)

	if !almostEqual(got.TicketPricePerPerson, 1000) {
		t.Fatalf("ticket price: expected 1000, got %v", got.TicketPricePerPerson)
	}
	if !almostEqual(got.DiscountPerPerson, 180) {
		t.Fatalf("discount: expected 180, got %v", got.DiscountPerPerson)
	}
	if !almostEqual(got.OriginalBasePricePerPerson, 1000) {
		t.Fatalf("base price: expected ~1000, got %v", got.OriginalBasePricePerPerson)
	}
	if !almostEqual(got.OriginalTaxPerPerson, 180) {
		t.Fatalf("tax: expected ~180, got %v", got.OriginalTaxPerPerson)
	}
	if !almostEqual(got.TotalAmount, 2000) {
		t.Fatalf("total: expected ~2000, got %v", got.TotalAmount)
	}
}

func TestComputeAmountsActivityPriceWins(t *testing.T) {
	booking := models.Booking{BookingAmount: "500", TotalParticipants: 1}
	exp := &models.Experience{Price: priceOf(800)}
	act := &models.Activity{Price: priceOf(590)}

	got := ComputeAmounts(booking, exp, act)
	if got.OriginalPricePerPerson != 590 {
		t.Fatalf("expected activity price 590 to win, got %v", got.OriginalPricePerPerson)
	}
}

func TestComputeAmountsParticipantsDefault(t *testing.T) {
	booking := models.Booking{BookingAmount: "1500"}
	got := ComputeAmounts(booking, &models.Experience{Price: priceOf(1500)}, nil)

	if got.TotalParticipants != 1 {
		t.Fatalf("participants should default to 1, got %d", got.TotalParticipants)
	}
	if got.TicketPricePerPerson != got.BookingAmount {
		t.Fatalf("with one participant ticket price must equal booking amount, got %v vs %v",
			got.TicketPricePerPerson, got.BookingAmount)
	}
}

func TestComputeAmountsUnparseableAmount(t *testing.T) {
	booking := models.Booking{BookingAmount: "n/a", TotalParticipants: 3}
	got := ComputeAmounts(booking, &models.Experience{Price: priceOf(900)}, nil)

	if got.BookingAmount != 0 {
		t.Fatalf("unparseable amount should default to 0, got %v", got.BookingAmount)
	}
	if got.TicketPricePerPerson != 0 {
		t.Fatalf("ticket price should be 0, got %v", got.TicketPricePerPerson)
	}
}

func TestComputeAmountsSurchargeNotClamped(t *testing.T) {
	// Paid more than catalog price: discount goes negative and stays so.
	booking := models.Booking{BookingAmount: "2360", TotalParticipants: 1}
	got := ComputeAmounts(booking, &models.Experience{Price: priceOf(1180)}, nil)

	if got.DiscountPerPerson >= 0 {
		t.Fatalf("expected negative discount (surcharge), got %v", got.DiscountPerPerson)
	}
	if !almostEqual(got.DiscountPerPerson, -1180) {
		t.Fatalf("expected discount -1180, got %v", got.DiscountPerPerson)
	}
}

func TestComputeAmountsTotalReconcilesExactly(t *testing.T) {
	cases := []struct {
		amount       string
		participants int
		price        float64
	}{
		{"2000", 2, 1180},
		{"999.99", 3, 333.33},
		{"1", 7, 0.5},
		{"0", 1, 100},
	}
	for _, tc := range cases {
		booking := models.Booking{BookingAmount: tc.amount, TotalParticipants: tc.participants}
		got := ComputeAmounts(booking, &models.Experience{Price: priceOf(tc.price)}, nil)

		want := got.TotalPricePerPerson * float64(got.TotalParticipants)
		if got.TotalAmount != want {
			t.Fatalf("amount=%s n=%d: total %v != per-person*n %v", tc.amount, tc.participants, got.TotalAmount, want)
		}
	}
}

func TestComputeAmountsIsPure(t *testing.T) {
	booking := models.Booking{BookingAmount: "1234.56", TotalParticipants: 4}
	exp := &models.Experience{Price: priceOf(400)}
	act := &models.Activity{Price: priceOf(350)}

	first := ComputeAmounts(booking, exp, act)
	second := ComputeAmounts(booking, exp, act)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical outputs:\n%+v\n%+v", first, second)
	}
}

func TestComputeAmountsNoCatalogPrice(t *testing.T) {
	booking := models.Booking{BookingAmount: "1000", TotalParticipants: 2}
	got := ComputeAmounts(booking, nil, nil)

	if got.OriginalPricePerPerson != 0 {
		t.Fatalf("missing catalog price should default to 0, got %v", got.OriginalPricePerPerson)
	}
	if !almostEqual(got.DiscountPerPerson, -500) {
		t.Fatalf("discount should be -ticket when catalog price missing, got %v", got.DiscountPerPerson)
	}
}
