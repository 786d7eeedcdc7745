package models

// Product represents a catalog product in the database.
// Rows with IsCategoryTotal=true are synthetic "category total" rows
// (at most one per category); they never store their own quantity.
type Product struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	IsCategoryTotal   bool   `json:"isCategoryTotal"`
	DefaultPriceCents int64  `json:"defaultPriceCents"`
	CreatedAt         string `json:"createdAt"`
}

// ProductView is a Product enriched with its compact display name
// ("Farcite - Albicocca" -> "Albicocca").
type ProductView struct {
	Product
	DisplayName string `json:"displayName"`
}

// ProductListResponse represents the response for listing products
// Example response:
// {
//   "products": [
//     {
//       "id": "5b9f...",
//       "name": "Farcite - Albicocca",
//       "displayName": "Albicocca",
//       "category": "Farcite",
//       "isCategoryTotal": false,
//       "defaultPriceCents": 150,
//       "createdAt": "2026-01-01T08:00:00Z"
//     }
//   ]
// }
type ProductListResponse struct {
	Products []ProductView `json:"products"`
}

// PriceSetting represents a per-product price override in cents.
// Absence of an override means the product's default price applies.
type PriceSetting struct {
	ProductID  string `json:"productId"`
	PriceCents int64  `json:"priceCents"`
}

// WeeklyExpectedEntry represents one expected quantity for a
// (weekday, product) pair. Weekday is ISO: 1=Monday .. 7=Sunday.
type WeeklyExpectedEntry struct {
	Weekday     int    `json:"weekday"`
	ProductID   string `json:"productId"`
	ExpectedQty int    `json:"expectedQty"`
}
