package finance

// IngredientLookup resolves ingredients by id.
type IngredientLookup interface {
	Ingredient(id string) (Ingredient, bool)
}

// IngredientIndex is a map-backed IngredientLookup.
type IngredientIndex map[string]Ingredient

// Ingredient implements IngredientLookup.
func (idx IngredientIndex) Ingredient(id string) (Ingredient, bool) {
	ing, ok := idx[id]
	return ing, ok
}

// IndexIngredients builds an IngredientIndex. The first ingredient with a given id wins.
func IndexIngredients(ingredients []Ingredient) IngredientIndex {
	idx := make(IngredientIndex, len(ingredients))
	for _, ing := range ingredients {
		if _, dup := idx[ing.ID]; dup {
			continue
		}
		idx[ing.ID] = ing
	}
	return idx
}

// RecipeLine is the cost contribution of a single resolved component.
type RecipeLine struct {
	IngredientID string  `json:"ingredientId"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	UnitCost     float64 `json:"unitCost"`
	Cost         float64 `json:"cost"`
}

// RecipeBreakdown is the costing of one menu item.
type RecipeBreakdown struct {
	Lines       []RecipeLine `json:"lines"`
	Unresolved  []string     `json:"unresolved"`
	RawCost     float64      `json:"rawCost"`
	WastageCost float64      `json:"wastageCost"`
	TotalCost   float64      `json:"totalCost"`
}

// RecipeCost costs a menu item against the current ingredient data.
// Components with an empty ingredient id are skipped; ids that do not resolve
// contribute nothing and are listed in Unresolved.
func RecipeCost(item MenuItem, lookup IngredientLookup) RecipeBreakdown {
	b := RecipeBreakdown{
		Lines:      make([]RecipeLine, 0, len(item.Components)),
		Unresolved: make([]string, 0),
	}

	for _, comp := range item.Components {
		if comp.IngredientID == "" {
			continue
		}
		ing, ok := lookup.Ingredient(comp.IngredientID)
		if !ok {
			b.Unresolved = append(b.Unresolved, comp.IngredientID)
			continue
		}

		cost := ing.CostPerBaseUnit * comp.Quantity
		b.RawCost += cost
		b.Lines = append(b.Lines, RecipeLine{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Quantity:     comp.Quantity,
			UnitCost:     ing.CostPerBaseUnit,
			Cost:         cost,
		})
	}

	b.TotalCost = b.RawCost * (1 + item.WastagePercent/100)
	b.WastageCost = b.TotalCost - b.RawCost
	return b
}

// CostMenu returns a copy of menu with every TotalCost recomputed from lookup.
func CostMenu(menu []MenuItem, lookup IngredientLookup) []MenuItem {
	out := make([]MenuItem, len(menu))
	for i, item := range menu {
		item.TotalCost = RecipeCost(item, lookup).TotalCost
		out[i] = item
	}
	return out
}

// FoodCostPercent is the item's cost as a percentage of its in-store price, 0 when unpriced.
func FoodCostPercent(item MenuItem) float64 {
	if item.Price == 0 {
		return 0
	}
	return item.TotalCost / item.Price * 100
}
