package service

import (
	"strings"
	"testing"

	"github.com/paikari-bazar/internal/models"

	"github.com/shopspring/decimal"
)

func TestOrderConfirmationBodyListsLinesAndReference(t *testing.T) {
	body := buildOrderConfirmationBody(OrderConfirmationEmailInput{
		OrderNo:      "PB20260830ABCD",
		CustomerName: "Rahim",
		Lines: []OrderConfirmationEmailLine{
			{Name: "25kg sack", Quantity: 10, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(1650))},
			{Name: "50kg sack", Quantity: 5, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(3200))},
		},
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(32500)),
		AdvanceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(9750)),
		BkashNumber:   "01712345678",
		TransactionID: "9HX2K3L7MQ",
	})

	for _, want := range []string{
		"25kg sack x10 @ 1650.00 BDT",
		"50kg sack x5 @ 3200.00 BDT",
		"Order total: 32500.00 BDT",
		"Advance paid: 9750.00 BDT",
		"bKash transaction id: 9HX2K3L7MQ",
		"bKash number 01712345678",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q, got:\n%s", want, body)
		}
	}
}

func TestOrderConfirmationBodyOmitsEmptyReference(t *testing.T) {
	body := buildOrderConfirmationBody(OrderConfirmationEmailInput{
		OrderNo:       "PB20260830ABCD",
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		AdvanceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
	})

	if strings.Contains(body, "transaction id") {
		t.Fatalf("expected no transaction line for empty reference, got:\n%s", body)
	}
	if !strings.Contains(body, "Dear customer,") {
		t.Fatalf("expected fallback salutation, got:\n%s", body)
	}
}
