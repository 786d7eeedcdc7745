package compute

import (
	"reflect"
	"testing"
)

func TestBuildSavePayload(t *testing.T) {
	products := testProducts()

	t.Run("one item per real product, category total excluded", func(t *testing.T) {
		draft := DayDraft{Quantities: QuantityMap{"p1": 12, "tot": 999}}
		payload := BuildSavePayload(products, "2026-03-14", draft)

		if payload.Date != "2026-03-14" {
			t.Errorf("Expected date 2026-03-14, got %s", payload.Date)
		}
		if len(payload.Items) != 3 {
			t.Fatalf("Expected 3 items (real products only), got %d", len(payload.Items))
		}
		for _, item := range payload.Items {
			if item.ProductID == "tot" {
				t.Error("Category-total row must never appear in the save payload")
			}
		}
	})

	t.Run("closed draft persists zeroes", func(t *testing.T) {
		draft := DayDraft{IsClosed: true, Notes: "chiuso", Quantities: QuantityMap{"p1": 12}}
		payload := BuildSavePayload(products, "2026-03-14", draft)

		if !payload.IsClosed {
			t.Fatal("Expected closed payload")
		}
		if payload.Notes != "chiuso" {
			t.Errorf("Expected notes preserved, got %q", payload.Notes)
		}
		for _, item := range payload.Items {
			if item.ReceivedQty != 0 {
				t.Errorf("Closed payload must persist zeroes, got %s=%d", item.ProductID, item.ReceivedQty)
			}
		}
	})
}

// Building a draft from a saved delivery, constructing the save payload,
// and rebuilding a draft from that payload must reproduce the original
// draft for open days.
func TestSavePayloadRoundTrip(t *testing.T) {
	products := testProducts()

	original := BuildDayDraft(BuildInput{
		Products:      products,
		HasDelivery:   true,
		DeliveryNotes: "giro doppio",
		ReceivedByID:  map[string]int{"p1": 7, "p2": 3},
	})

	payload := BuildSavePayload(products, "2026-03-14", original)

	received := make(map[string]int, len(payload.Items))
	for _, item := range payload.Items {
		received[item.ProductID] = item.ReceivedQty
	}

	rebuilt := BuildDayDraft(BuildInput{
		Products:         products,
		HasDelivery:      true,
		DeliveryIsClosed: payload.IsClosed,
		DeliveryNotes:    payload.Notes,
		ReceivedByID:     received,
	})

	if !reflect.DeepEqual(original, rebuilt) {
		t.Errorf("Round trip mismatch:\noriginal: %+v\nrebuilt:  %+v", original, rebuilt)
	}
}
