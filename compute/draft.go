// Package compute holds the pure day-state logic: normalizing quantities,
// building a day's editable draft from saved deliveries or weekly presets,
// enforcing the closed-day rule, and aggregating KPIs. Everything here is
// deterministic and side-effect-free; persistence lives in repository.
package compute

import (
	"math"

	"brioche-tracker/catalog"
	"brioche-tracker/models"
)

// QuantityMap maps product id to a non-negative integer quantity.
// Missing keys are treated as zero.
type QuantityMap map[string]int

// DayDraft is the transient, editable state of one calendar day.
// Invariant: if IsClosed is true, every quantity is 0.
type DayDraft struct {
	IsClosed   bool
	Notes      string
	Quantities QuantityMap
}

// NormalizeQty coerces any numeric input into a valid quantity:
// NaN/Inf become 0, fractions are truncated toward zero, negatives clamp
// to 0. Total function, never errors. Every quantity entering a
// QuantityMap passes through here.
func NormalizeQty(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	v := int(math.Trunc(n))
	if v < 0 {
		return 0
	}
	return v
}

// quantitiesFromSource builds a QuantityMap covering every real product in
// the catalog, taking values from src (missing => 0). Category-total rows
// never receive entries.
func quantitiesFromSource(products []models.Product, src map[string]int) QuantityMap {
	out := make(QuantityMap, len(products))
	for _, p := range products {
		if !catalog.IsRealProduct(p) {
			continue
		}
		out[p.ID] = NormalizeQty(float64(src[p.ID]))
	}
	return out
}

// BuildInput carries everything BuildDayDraft needs for one date.
type BuildInput struct {
	Products []models.Product

	// HasDelivery reports whether a saved delivery exists for the date.
	// When false the weekly preset seeds the draft and the day is open.
	HasDelivery      bool
	DeliveryIsClosed bool
	DeliveryNotes    string
	ReceivedByID     map[string]int // saved quantities, real products only
	ExpectedByID     map[string]int // weekday preset, real products only
}

// BuildDayDraft produces the canonical editable draft for a day. Pure
// function of its input: rebuilding with the same snapshot always yields
// an identical draft, so callers may rebuild whenever backing data
// refreshes instead of patching.
func BuildDayDraft(in BuildInput) DayDraft {
	var draft DayDraft

	if in.HasDelivery {
		draft = DayDraft{
			IsClosed:   in.DeliveryIsClosed,
			Notes:      in.DeliveryNotes,
			Quantities: quantitiesFromSource(in.Products, in.ReceivedByID),
		}
	} else {
		// A day with no record is never considered closed.
		draft = DayDraft{
			IsClosed:   false,
			Notes:      "",
			Quantities: quantitiesFromSource(in.Products, in.ExpectedByID),
		}
	}

	return ApplyClosedRule(draft)
}

// ApplyClosedRule enforces the closed-day invariant: an open draft passes
// through unchanged; a closed draft gets every quantity forced to 0. Keys
// are preserved so the set of known products stays stable across toggles.
func ApplyClosedRule(draft DayDraft) DayDraft {
	if !draft.IsClosed {
		return draft
	}
	zeroed := make(QuantityMap, len(draft.Quantities))
	for pid := range draft.Quantities {
		zeroed[pid] = 0
	}
	return DayDraft{
		IsClosed:   true,
		Notes:      draft.Notes,
		Quantities: zeroed,
	}
}

// Close marks the draft as closed, zeroing all quantities. Notes are kept.
func Close(draft DayDraft) DayDraft {
	draft.IsClosed = true
	return ApplyClosedRule(draft)
}

// ReopenToPreset produces a fresh open draft reseeded from the weekday
// preset. Reopening deliberately discards previously entered quantities
// and notes; there is no half-transition that merely flips the flag.
func ReopenToPreset(products []models.Product, expectedByID map[string]int) DayDraft {
	return DayDraft{
		IsClosed:   false,
		Notes:      "",
		Quantities: quantitiesFromSource(products, expectedByID),
	}
}

// ApplyPreset reseeds all quantities from the weekday preset without
// touching the closed flag or the notes. Closed drafts are returned
// unchanged: their quantities stay pinned at zero until reopened.
func ApplyPreset(draft DayDraft, products []models.Product, expectedByID map[string]int) DayDraft {
	if draft.IsClosed {
		return draft
	}
	return DayDraft{
		IsClosed:   false,
		Notes:      draft.Notes,
		Quantities: quantitiesFromSource(products, expectedByID),
	}
}

// SetQuantity sets a single product's quantity through the normalizer.
// Editing a closed draft is a no-op.
func SetQuantity(draft DayDraft, productID string, qty float64) DayDraft {
	if draft.IsClosed {
		return draft
	}
	next := make(QuantityMap, len(draft.Quantities))
	for pid, q := range draft.Quantities {
		next[pid] = q
	}
	next[productID] = NormalizeQty(qty)
	return DayDraft{
		IsClosed:   false,
		Notes:      draft.Notes,
		Quantities: next,
	}
}
