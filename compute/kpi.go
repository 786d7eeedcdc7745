package compute

// TotalPieces sums every quantity in the map. QuantityMaps only ever hold
// real products (BuildDayDraft guarantees it), so no filtering is needed
// and category-total rows can never be double counted.
func TotalPieces(quantities QuantityMap) int {
	total := 0
	for _, q := range quantities {
		total += q
	}
	return total
}

// TotalValueCents sums quantity * unit price over every entry, in integer
// cents. Both operands are re-normalized defensively and a missing price
// counts as 0, so the function is total and never errors.
func TotalValueCents(quantities QuantityMap, pricesByID map[string]int64) int64 {
	var total int64
	for pid, qty := range quantities {
		q := int64(NormalizeQty(float64(qty)))
		price := int64(NormalizeQty(float64(pricesByID[pid])))
		total += q * price
	}
	return total
}
