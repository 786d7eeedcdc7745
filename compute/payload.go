package compute

import (
	"brioche-tracker/catalog"
	"brioche-tracker/models"
)

// SavePayload is the write payload for persisting a day: one delivery
// upsert keyed by date, plus one item upsert per real product. The
// repository must write the delivery before the items, since items
// reference the delivery's identity. Re-saving the same date overwrites,
// never duplicates.
type SavePayload struct {
	Date     string // YYYY-MM-DD
	IsClosed bool
	Notes    string
	Items    []SaveItem
}

// SaveItem is one per-product quantity upsert.
type SaveItem struct {
	ProductID   string
	ReceivedQty int
}

// BuildSavePayload constructs the save payload for a draft. The closed
// rule is applied first, so a closed draft always persists zeroes. Every
// real product in the catalog gets an item (missing map entries save as
// 0); category-total rows never do.
func BuildSavePayload(products []models.Product, date string, draft DayDraft) SavePayload {
	draft = ApplyClosedRule(draft)

	items := make([]SaveItem, 0, len(products))
	for _, p := range products {
		if !catalog.IsRealProduct(p) {
			continue
		}
		items = append(items, SaveItem{
			ProductID:   p.ID,
			ReceivedQty: NormalizeQty(float64(draft.Quantities[p.ID])),
		})
	}

	return SavePayload{
		Date:     date,
		IsClosed: draft.IsClosed,
		Notes:    draft.Notes,
		Items:    items,
	}
}
