// Package wizard holds the estimator's input state and the reducer that
// produces a new state for every user action. Calculations live in finance.
package wizard

import (
	"github.com/google/uuid"

	"github.com/ocobiz/fnbcalc/internal/finance"
)

// WaitlistForm is the contact form shown after the quick estimate.
type WaitlistForm struct {
	Name            string `json:"name"`
	ShopName        string `json:"shopName"`
	Phone           string `json:"phone"`
	FavoriteFeature string `json:"favoriteFeature"`
}

// State is the whole input snapshot of one estimation session.
type State struct {
	Snapshot finance.Snapshot  `json:"snapshot"`
	Lite     finance.LiteInput `json:"lite"`
	Waitlist WaitlistForm      `json:"waitlist"`
}

// Defaults seed a fresh State.
type Defaults struct {
	RecoveryYears     float64
	ShopDiscount      float64
	AppDiscount       float64
	AppCommissionRate float64
	COGSRate          float64
	WastagePercent    float64
	FavoriteFeature   string
}

// DefaultDefaults mirrors the values the estimator starts with out of the box.
func DefaultDefaults() Defaults {
	return Defaults{
		RecoveryYears:     3,
		ShopDiscount:      0,
		AppDiscount:       25,
		AppCommissionRate: 25,
		COGSRate:          35,
		WastagePercent:    5,
		FavoriteFeature:   "Tính giá vốn",
	}
}

// NewState returns an empty session state seeded with d.
func NewState(d Defaults) State {
	return State{
		Snapshot: finance.Snapshot{
			Ingredients: []finance.Ingredient{},
			Menu:        []finance.MenuItem{},
			Sales: finance.SalesData{
				InStore:  map[string]float64{},
				Delivery: map[string]float64{},
			},
			Period:    finance.PeriodMonth,
			Discounts: finance.Discounts{Shop: d.ShopDiscount, App: d.AppDiscount},
			Capex:     finance.Capex{RecoveryYears: d.RecoveryYears},
			Opex:      finance.Opex{Others: []finance.OtherExpense{}},
			Roles:     []finance.Role{},
		},
		Lite: finance.LiteInput{
			RecoveryYears:     d.RecoveryYears,
			RevenueInputMode:  finance.PeriodMonth,
			AppCommissionRate: d.AppCommissionRate,
			COGSRate:          d.COGSRate,
		},
		Waitlist: WaitlistForm{FavoriteFeature: d.FavoriteFeature},
	}
}

// IDFunc generates identifiers for new records.
type IDFunc func() string

// Reducer applies actions to states. The zero value uses random UUIDs and DefaultDefaults.
type Reducer struct {
	NewID    IDFunc
	Defaults Defaults
}

// NewReducer returns a Reducer seeded with d.
func NewReducer(d Defaults) *Reducer {
	return &Reducer{NewID: uuid.NewString, Defaults: d}
}

func (r *Reducer) id() string {
	if r.NewID == nil {
		return uuid.NewString()
	}
	return r.NewID()
}

func (r *Reducer) wastageDefault() float64 {
	if r.Defaults == (Defaults{}) {
		return DefaultDefaults().WastagePercent
	}
	return r.Defaults.WastagePercent
}

// clone copies every slice and map of s so a reducer can modify the result freely.
func clone(s State) State {
	snap := s.Snapshot

	snap.Ingredients = append([]finance.Ingredient{}, snap.Ingredients...)
	menu := make([]finance.MenuItem, len(snap.Menu))
	for i, item := range snap.Menu {
		item.Components = append([]finance.RecipeComponent{}, item.Components...)
		menu[i] = item
	}
	snap.Menu = menu
	snap.Roles = append([]finance.Role{}, snap.Roles...)
	snap.Opex.Others = append([]finance.OtherExpense{}, snap.Opex.Others...)
	snap.Sales = finance.SalesData{
		InStore:  copyQuantities(snap.Sales.InStore),
		Delivery: copyQuantities(snap.Sales.Delivery),
	}

	s.Snapshot = snap
	return s
}

func copyQuantities(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
