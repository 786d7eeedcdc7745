package catalog

import (
	"testing"

	"brioche-tracker/models"
)

var (
	albicocca = models.Product{ID: "a", Name: "Farcite - Albicocca", Category: "Farcite"}
	crema     = models.Product{ID: "b", Name: "Farcite - Crema", Category: "Farcite"}
	totale    = models.Product{ID: "total", Name: "Farcite (TOTALE)", Category: "Farcite", IsCategoryTotal: true}
	vuota     = models.Product{ID: "v", Name: "Brioche vuota", Category: "Classiche"}
)

func TestClassifierPredicates(t *testing.T) {
	if !IsCategoryTotal(totale) || IsCategoryTotal(albicocca) {
		t.Error("IsCategoryTotal must hold exactly for the synthetic total row")
	}
	if !IsRealProduct(albicocca) || IsRealProduct(totale) {
		t.Error("IsRealProduct must be the negation of IsCategoryTotal")
	}

	if !IsCategoryMember(albicocca, "Farcite") {
		t.Error("Expected albicocca to be a Farcite member")
	}
	if IsCategoryMember(totale, "Farcite") {
		t.Error("The category total row is never a member of its own category")
	}
	if IsCategoryMember(vuota, "Farcite") {
		t.Error("Products of other categories are not members")
	}
}

func TestCategoryTotal(t *testing.T) {
	products := []models.Product{albicocca, crema, totale}
	quantities := map[string]int{"a": 3, "b": 5, "total": 999}

	// The stray entry under the total row's id must not be counted.
	if got := CategoryTotal(products, quantities, "Farcite"); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}

	t.Run("missing entries count as zero", func(t *testing.T) {
		if got := CategoryTotal(products, map[string]int{"a": 3}, "Farcite"); got != 3 {
			t.Errorf("Expected 3, got %d", got)
		}
	})

	t.Run("empty category totals zero", func(t *testing.T) {
		if got := CategoryTotal(products, quantities, "Pizzette"); got != 0 {
			t.Errorf("Expected 0 for a category with no members, got %d", got)
		}
	})
}

func TestCategoryTotals(t *testing.T) {
	products := []models.Product{albicocca, crema, totale, vuota}
	quantities := map[string]int{"a": 2, "b": 4, "v": 7}

	got := CategoryTotals(products, quantities)
	if len(got) != 1 {
		t.Fatalf("Expected one entry (only Farcite has a total row), got %v", got)
	}
	if got["Farcite"] != 6 {
		t.Errorf("Expected Farcite total 6, got %d", got["Farcite"])
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    string
	}{
		{"strips category prefix with dash", albicocca, "Albicocca"},
		{"strips colon separator", models.Product{Name: "Farcite: Mirtillo", Category: "Farcite"}, "Mirtillo"},
		{"total row keeps full name", totale, "Farcite (TOTALE)"},
		{"unprefixed name unchanged", vuota, "Brioche vuota"},
		{"case-insensitive prefix match", models.Product{Name: "farcite - Pistacchio", Category: "Farcite"}, "Pistacchio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.product); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.product.Name, got, tt.want)
			}
		})
	}
}
