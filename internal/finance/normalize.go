package finance

// UnitCost is the result of normalizing a purchase price to the ingredient's base unit.
type UnitCost struct {
	TotalBaseUnits  float64 `json:"totalBaseUnits"`
	CostPerBaseUnit float64 `json:"costPerBaseUnit"`
	// Degenerate reports that the conversion resolved to zero base units and was floored to 1.
	Degenerate bool `json:"degenerate"`
}

// Normalize computes the cost per base unit (ml, g or pcs) of an ingredient.
// Count ingredients ignore UnitSize. A conversion that resolves to zero base units
// is floored to 1, so the cost per base unit is the raw purchase price.
func Normalize(ing Ingredient) UnitCost {
	total := ing.PackQuantity
	if ing.Kind != UnitCount {
		total = ing.PackQuantity * ing.UnitSize
	}

	degenerate := false
	if total == 0 {
		total = 1
		degenerate = true
	}

	return UnitCost{
		TotalBaseUnits:  total,
		CostPerBaseUnit: ing.PurchasePrice / total,
		Degenerate:      degenerate,
	}
}

// NormalizeIngredient returns a copy of ing with its derived conversion fields filled in.
func NormalizeIngredient(ing Ingredient) Ingredient {
	uc := Normalize(ing)
	ing.ConversionRate = uc.TotalBaseUnits
	ing.CostPerBaseUnit = uc.CostPerBaseUnit
	return ing
}

// NormalizeAll recomputes the derived fields of every ingredient. The input slice is not modified.
func NormalizeAll(ingredients []Ingredient) []Ingredient {
	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		out[i] = NormalizeIngredient(ing)
	}
	return out
}
