package public

import (
	"testing"

	"github.com/paikari-bazar/internal/models"
)

func TestCheckoutSuccessPayloadCarriesRedirect(t *testing.T) {
	order := &models.Order{OrderNo: "PB20260830ABCD"}

	payload := checkoutSuccessPayload(order)

	if payload["redirect"] != "/order-success" {
		t.Fatalf("expected /order-success redirect, got %v", payload["redirect"])
	}
	got, ok := payload["order"].(*models.Order)
	if !ok || got.OrderNo != order.OrderNo {
		t.Fatalf("expected order in payload, got %v", payload["order"])
	}
}
