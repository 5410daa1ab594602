package finance

// Estimate is the output of the full pipeline with every intermediate stage.
type Estimate struct {
	Ingredients []Ingredient `json:"ingredients"`
	Menu        []MenuItem   `json:"menu"`
	Sales       SalesTotals  `json:"sales"`
	PnL         PnL          `json:"pnl"`
}

// Estimate runs the pipeline in dependency order: ingredient normalization,
// recipe costing, sales aggregation and the P&L. Derived fields present in the
// snapshot are ignored and recomputed from the raw inputs.
func (p Policy) Estimate(s Snapshot) Estimate {
	ingredients := NormalizeAll(s.Ingredients)
	menu := CostMenu(s.Menu, IndexIngredients(ingredients))
	sales := Aggregate(menu, s.Sales, s.Discounts, s.Period)

	return Estimate{
		Ingredients: ingredients,
		Menu:        menu,
		Sales:       sales,
		PnL: p.ComputePnL(PnLInput{
			GrossRevenue: sales.GrossRevenue,
			GrossCOGS:    sales.GrossCOGS,
			Opex:         s.Opex,
			Roles:        s.Roles,
			Capex:        s.Capex,
		}),
	}
}
