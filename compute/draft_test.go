package compute

import (
	"math"
	"reflect"
	"testing"

	"brioche-tracker/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Brioche vuota", Category: "Classiche"},
		{ID: "p2", Name: "Farcite - Albicocca", Category: "Farcite"},
		{ID: "p3", Name: "Farcite - Crema", Category: "Farcite"},
		{ID: "tot", Name: "Farcite (TOTALE)", Category: "Farcite", IsCategoryTotal: true},
	}
}

func TestNormalizeQty(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"positive integer", 5, 5},
		{"truncates fraction", 5.7, 5},
		{"negative clamps to zero", -5.7, 0},
		{"negative integer clamps to zero", -3, 0},
		{"zero", 0, 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeQty(tt.in); got != tt.want {
				t.Errorf("NormalizeQty(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildDayDraftFromPreset(t *testing.T) {
	draft := BuildDayDraft(BuildInput{
		Products:     testProducts(),
		HasDelivery:  false,
		ExpectedByID: map[string]int{"p1": 10, "p2": 4},
	})

	if draft.IsClosed {
		t.Error("Expected draft without delivery to be open")
	}
	if draft.Notes != "" {
		t.Errorf("Expected empty notes, got %q", draft.Notes)
	}

	want := QuantityMap{"p1": 10, "p2": 4, "p3": 0}
	if !reflect.DeepEqual(draft.Quantities, want) {
		t.Errorf("Expected quantities %v, got %v", want, draft.Quantities)
	}
	if _, ok := draft.Quantities["tot"]; ok {
		t.Error("Category-total row must not receive a stored quantity")
	}
}

func TestBuildDayDraftFromDelivery(t *testing.T) {
	draft := BuildDayDraft(BuildInput{
		Products:         testProducts(),
		HasDelivery:      true,
		DeliveryIsClosed: false,
		DeliveryNotes:    "consegna in ritardo",
		ReceivedByID:     map[string]int{"p1": 7, "p3": 2},
		ExpectedByID:     map[string]int{"p1": 99},
	})

	if draft.IsClosed {
		t.Error("Expected open draft")
	}
	if draft.Notes != "consegna in ritardo" {
		t.Errorf("Expected delivery notes, got %q", draft.Notes)
	}

	// Preset must be ignored entirely once a delivery exists.
	want := QuantityMap{"p1": 7, "p2": 0, "p3": 2}
	if !reflect.DeepEqual(draft.Quantities, want) {
		t.Errorf("Expected quantities %v, got %v", want, draft.Quantities)
	}
}

func TestBuildDayDraftClosedDeliveryZeroesQuantities(t *testing.T) {
	draft := BuildDayDraft(BuildInput{
		Products:         testProducts(),
		HasDelivery:      true,
		DeliveryIsClosed: true,
		DeliveryNotes:    "chiuso per ferie",
		ReceivedByID:     map[string]int{"p1": 7},
	})

	if !draft.IsClosed {
		t.Fatal("Expected closed draft")
	}
	if draft.Notes != "chiuso per ferie" {
		t.Errorf("Expected notes preserved on closed day, got %q", draft.Notes)
	}
	for pid, qty := range draft.Quantities {
		if qty != 0 {
			t.Errorf("Closed day must zero every quantity, got %s=%d", pid, qty)
		}
	}
	if len(draft.Quantities) != 3 {
		t.Errorf("Expected all 3 real products present, got %d keys", len(draft.Quantities))
	}
}

func TestBuildDayDraftIsIdempotent(t *testing.T) {
	in := BuildInput{
		Products:     testProducts(),
		HasDelivery:  true,
		ReceivedByID: map[string]int{"p1": 3, "p2": 1},
	}

	first := BuildDayDraft(in)
	second := BuildDayDraft(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rebuilding from the same input must yield an identical draft: %v vs %v", first, second)
	}
}

func TestApplyClosedRule(t *testing.T) {
	t.Run("open draft passes through unchanged", func(t *testing.T) {
		draft := DayDraft{Notes: "x", Quantities: QuantityMap{"p1": 5}}
		got := ApplyClosedRule(draft)
		if !reflect.DeepEqual(got, draft) {
			t.Errorf("Expected identity on open draft, got %v", got)
		}
	})

	t.Run("closed draft zeroes but keeps keys", func(t *testing.T) {
		draft := DayDraft{IsClosed: true, Notes: "x", Quantities: QuantityMap{"p1": 5, "p2": 0}}
		got := ApplyClosedRule(draft)

		want := QuantityMap{"p1": 0, "p2": 0}
		if !reflect.DeepEqual(got.Quantities, want) {
			t.Errorf("Expected %v, got %v", want, got.Quantities)
		}
		if got.Notes != "x" {
			t.Errorf("Expected notes preserved, got %q", got.Notes)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		draft := DayDraft{IsClosed: true, Quantities: QuantityMap{"p1": 9}}
		once := ApplyClosedRule(draft)
		twice := ApplyClosedRule(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("applyClosedRule must be idempotent: %v vs %v", once, twice)
		}
	})
}

func TestCloseKeepsNotes(t *testing.T) {
	draft := DayDraft{Notes: "nota del giorno", Quantities: QuantityMap{"p1": 5}}
	closed := Close(draft)

	if !closed.IsClosed {
		t.Fatal("Expected closed draft")
	}
	if closed.Notes != "nota del giorno" {
		t.Errorf("Close must preserve notes, got %q", closed.Notes)
	}
	if closed.Quantities["p1"] != 0 {
		t.Errorf("Close must zero quantities, got %d", closed.Quantities["p1"])
	}
}

func TestReopenToPreset(t *testing.T) {
	reopened := ReopenToPreset(testProducts(), map[string]int{"p1": 10, "p2": 4})

	if reopened.IsClosed {
		t.Error("Expected reopened draft to be open")
	}
	if reopened.Notes != "" {
		t.Errorf("Reopen must clear notes, got %q", reopened.Notes)
	}
	want := QuantityMap{"p1": 10, "p2": 4, "p3": 0}
	if !reflect.DeepEqual(reopened.Quantities, want) {
		t.Errorf("Expected preset quantities %v, got %v", want, reopened.Quantities)
	}
}

func TestApplyPreset(t *testing.T) {
	t.Run("reseeds quantities but keeps notes", func(t *testing.T) {
		draft := DayDraft{Notes: "keep me", Quantities: QuantityMap{"p1": 99, "p2": 99, "p3": 99}}
		got := ApplyPreset(draft, testProducts(), map[string]int{"p1": 10})

		if got.Notes != "keep me" {
			t.Errorf("ApplyPreset must keep notes, got %q", got.Notes)
		}
		want := QuantityMap{"p1": 10, "p2": 0, "p3": 0}
		if !reflect.DeepEqual(got.Quantities, want) {
			t.Errorf("Expected %v, got %v", want, got.Quantities)
		}
	})

	t.Run("no-op on closed draft", func(t *testing.T) {
		draft := DayDraft{IsClosed: true, Quantities: QuantityMap{"p1": 0}}
		got := ApplyPreset(draft, testProducts(), map[string]int{"p1": 10})
		if !reflect.DeepEqual(got, draft) {
			t.Errorf("ApplyPreset on a closed draft must be a no-op, got %v", got)
		}
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		draft := DayDraft{Quantities: QuantityMap{"p1": 1}}
		got := SetQuantity(draft, "p1", -4.2)
		if got.Quantities["p1"] != 0 {
			t.Errorf("Expected negative input clamped to 0, got %d", got.Quantities["p1"])
		}

		got = SetQuantity(draft, "p1", 7.9)
		if got.Quantities["p1"] != 7 {
			t.Errorf("Expected 7, got %d", got.Quantities["p1"])
		}
	})

	t.Run("does not mutate the original draft", func(t *testing.T) {
		draft := DayDraft{Quantities: QuantityMap{"p1": 1}}
		_ = SetQuantity(draft, "p1", 5)
		if draft.Quantities["p1"] != 1 {
			t.Errorf("Original draft mutated: %d", draft.Quantities["p1"])
		}
	})

	t.Run("no-op on closed draft", func(t *testing.T) {
		draft := DayDraft{IsClosed: true, Quantities: QuantityMap{"p1": 0}}
		got := SetQuantity(draft, "p1", 5)
		if got.Quantities["p1"] != 0 {
			t.Errorf("Editing a closed draft must be a no-op, got %d", got.Quantities["p1"])
		}
	})
}
