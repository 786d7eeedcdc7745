package catalog

import (
	"strings"

	"brioche-tracker/models"
)

// IsCategoryTotal returns true if p is the synthetic "category total" row.
func IsCategoryTotal(p models.Product) bool {
	return p.IsCategoryTotal
}

// IsRealProduct returns true for every product that is not a category
// total row. Only real products carry stored quantities and prices.
func IsRealProduct(p models.Product) bool {
	return !p.IsCategoryTotal
}

// IsCategoryMember returns true if p is a real product belonging to the
// given category. The category total row itself is never a member.
func IsCategoryMember(p models.Product, category string) bool {
	return p.Category == category && !p.IsCategoryTotal
}

// CategoryTotal computes the sum of quantities over the real members of a
// category. It is always recomputed from the live quantity map, never
// stored, so it cannot drift. Missing entries count as 0; a category with
// no members totals 0.
func CategoryTotal(products []models.Product, quantities map[string]int, category string) int {
	total := 0
	for _, p := range products {
		if !IsCategoryMember(p, category) {
			continue
		}
		total += quantities[p.ID]
	}
	return total
}

// CategoryTotals computes the total for every category that has a
// category-total row, keyed by category name.
func CategoryTotals(products []models.Product, quantities map[string]int) map[string]int {
	out := make(map[string]int)
	for _, p := range products {
		if !IsCategoryTotal(p) {
			continue
		}
		out[p.Category] = CategoryTotal(products, quantities, p.Category)
	}
	return out
}

// DisplayName returns a compact display name for a product: real products
// named with their category as a prefix ("Farcite - Albicocca") are shown
// as the member name alone. Matching uses the product's own category
// field, not hardcoded strings. The DB name is never modified.
func DisplayName(p models.Product) string {
	if p.IsCategoryTotal || p.Category == "" {
		return p.Name
	}

	name := strings.TrimSpace(p.Name)
	for _, sep := range []string{" - ", " – ", ": ", " — "} {
		prefix := p.Category + strings.TrimRight(sep, " ")
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
			rest := strings.TrimSpace(name[len(prefix):])
			if rest != "" {
				return rest
			}
		}
	}

	return name
}
