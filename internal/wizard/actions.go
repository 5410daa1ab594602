package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ocobiz/fnbcalc/internal/finance"
)

var (
	ErrUnknownAction      = errors.New("unknown action")
	ErrMissingPayload     = errors.New("action payload is required")
	ErrNameRequired       = errors.New("name is required")
	ErrPriceRequired      = errors.New("price is required")
	ErrDuplicateComponent = errors.New("ingredient is already part of this recipe")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidChannel     = errors.New("channel must be inStore or delivery")
	ErrInvalidPeriod      = errors.New("period must be day or month")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// ActionType names a state transition.
type ActionType string

const (
	ActionAddIngredient      ActionType = "add_ingredient"
	ActionUpdateIngredient   ActionType = "update_ingredient"
	ActionDeleteIngredient   ActionType = "delete_ingredient"
	ActionSaveMenuItem       ActionType = "save_menu_item"
	ActionDeleteMenuItem     ActionType = "delete_menu_item"
	ActionAddRole            ActionType = "add_role"
	ActionUpdateRole         ActionType = "update_role"
	ActionDeleteRole         ActionType = "delete_role"
	ActionSetSalesQuantity   ActionType = "set_sales_quantity"
	ActionSetPeriod          ActionType = "set_period"
	ActionSetDiscounts       ActionType = "set_discounts"
	ActionSetCapex           ActionType = "set_capex"
	ActionSetOpex            ActionType = "set_opex"
	ActionAddOtherExpense    ActionType = "add_other_expense"
	ActionUpdateOtherExpense ActionType = "update_other_expense"
	ActionRemoveOtherExpense ActionType = "remove_other_expense"
	ActionSetLite            ActionType = "set_lite"
	ActionSetWaitlist        ActionType = "set_waitlist"
)

const (
	defaultPurchaseUnit = "Thùng"
	defaultExpenseName  = "Chi phí khác"
)

// IngredientDraft is the ingredient form. A nil PackQuantity means 1.
type IngredientDraft struct {
	Name          string           `json:"name"`
	Kind          finance.UnitKind `json:"type"`
	PurchaseUnit  string           `json:"unitIn"`
	PurchasePrice float64          `json:"unitPrice"`
	PackQuantity  *float64         `json:"packQuantity"`
	UnitSize      float64          `json:"unitSize"`
}

// MenuItemDraft is the menu item form. A nil WastagePercent uses the reducer default.
type MenuItemDraft struct {
	Name           string                    `json:"name"`
	Price          float64                   `json:"sellingPrice"`
	DeliveryPrice  float64                   `json:"sellingPriceApp"`
	Components     []finance.RecipeComponent `json:"components"`
	WastagePercent *float64                  `json:"wastagePercent"`
}

// Action is one user edit. Only the fields relevant to Type are read.
type Action struct {
	Type       ActionType            `json:"type"`
	ID         string                `json:"id,omitempty"`
	Index      int                   `json:"index,omitempty"`
	Ingredient *IngredientDraft      `json:"ingredient,omitempty"`
	MenuItem   *MenuItemDraft        `json:"menuItem,omitempty"`
	Role       *finance.Role         `json:"role,omitempty"`
	Channel    finance.Channel       `json:"channel,omitempty"`
	Quantity   float64               `json:"quantity,omitempty"`
	Period     finance.Period        `json:"period,omitempty"`
	Discounts  *finance.Discounts    `json:"discounts,omitempty"`
	Capex      *finance.Capex        `json:"capex,omitempty"`
	Opex       *finance.Opex         `json:"opex,omitempty"`
	Expense    *finance.OtherExpense `json:"expense,omitempty"`
	Lite       *finance.LiteInput    `json:"lite,omitempty"`
	Waitlist   *WaitlistForm         `json:"waitlist,omitempty"`
}

// Apply returns the state that results from a on s. s itself is never modified;
// on error the returned state is s.
func (r *Reducer) Apply(s State, a Action) (State, error) {
	next := clone(s)

	var err error
	switch a.Type {
	case ActionAddIngredient:
		err = r.saveIngredient(&next, "", a.Ingredient)
	case ActionUpdateIngredient:
		err = r.saveIngredient(&next, a.ID, a.Ingredient)
	case ActionDeleteIngredient:
		next.Snapshot.Ingredients = removeByID(next.Snapshot.Ingredients, a.ID, func(i finance.Ingredient) string { return i.ID })
	case ActionSaveMenuItem:
		err = r.saveMenuItem(&next, a.ID, a.MenuItem)
	case ActionDeleteMenuItem:
		next.Snapshot.Menu = removeByID(next.Snapshot.Menu, a.ID, func(m finance.MenuItem) string { return m.ID })
	case ActionAddRole:
		r.addRole(&next, a.Role)
	case ActionUpdateRole:
		err = updateRole(&next, a.ID, a.Role)
	case ActionDeleteRole:
		next.Snapshot.Roles = removeByID(next.Snapshot.Roles, a.ID, func(x finance.Role) string { return x.ID })
	case ActionSetSalesQuantity:
		err = setSalesQuantity(&next, a.Channel, a.ID, a.Quantity)
	case ActionSetPeriod:
		err = setPeriod(&next, a.Period)
	case ActionSetDiscounts:
		if a.Discounts == nil {
			err = ErrMissingPayload
			break
		}
		next.Snapshot.Discounts = *a.Discounts
	case ActionSetCapex:
		if a.Capex == nil {
			err = ErrMissingPayload
			break
		}
		next.Snapshot.Capex = *a.Capex
	case ActionSetOpex:
		if a.Opex == nil {
			err = ErrMissingPayload
			break
		}
		opex := *a.Opex
		opex.Others = append([]finance.OtherExpense{}, opex.Others...)
		next.Snapshot.Opex = opex
	case ActionAddOtherExpense:
		expense := finance.OtherExpense{Name: defaultExpenseName}
		if a.Expense != nil {
			expense = *a.Expense
		}
		next.Snapshot.Opex.Others = append(next.Snapshot.Opex.Others, expense)
	case ActionUpdateOtherExpense:
		err = updateOtherExpense(&next, a.Index, a.Expense)
	case ActionRemoveOtherExpense:
		err = removeOtherExpense(&next, a.Index)
	case ActionSetLite:
		if a.Lite == nil {
			err = ErrMissingPayload
			break
		}
		next.Lite = *a.Lite
	case ActionSetWaitlist:
		if a.Waitlist == nil {
			err = ErrMissingPayload
			break
		}
		next.Waitlist = *a.Waitlist
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}

	if err != nil {
		return s, err
	}
	return next, nil
}

func (r *Reducer) saveIngredient(s *State, id string, d *IngredientDraft) error {
	if d == nil {
		return ErrMissingPayload
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrNameRequired
	}
	if d.PurchasePrice == 0 {
		return ErrPriceRequired
	}

	ing := finance.Ingredient{
		ID:            id,
		Name:          name,
		Kind:          d.Kind,
		PurchaseUnit:  d.PurchaseUnit,
		PurchasePrice: d.PurchasePrice,
		PackQuantity:  1,
		UnitSize:      d.UnitSize,
	}
	if ing.Kind == "" {
		ing.Kind = finance.UnitVolume
	}
	if ing.PurchaseUnit == "" {
		ing.PurchaseUnit = defaultPurchaseUnit
	}
	if d.PackQuantity != nil {
		ing.PackQuantity = *d.PackQuantity
	}
	ing = finance.NormalizeIngredient(ing)

	if id == "" {
		ing.ID = r.id()
		s.Snapshot.Ingredients = append(s.Snapshot.Ingredients, ing)
		return nil
	}
	for i := range s.Snapshot.Ingredients {
		if s.Snapshot.Ingredients[i].ID == id {
			s.Snapshot.Ingredients[i] = ing
			return nil
		}
	}
	return fmt.Errorf("ingredient %q: %w", id, ErrNotFound)
}

func (r *Reducer) saveMenuItem(s *State, id string, d *MenuItemDraft) error {
	if d == nil {
		return ErrMissingPayload
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrNameRequired
	}
	if d.Price == 0 {
		return ErrPriceRequired
	}

	components := make([]finance.RecipeComponent, 0, len(d.Components))
	seen := make(map[string]bool, len(d.Components))
	for _, c := range d.Components {
		if c.IngredientID == "" {
			continue
		}
		if seen[c.IngredientID] {
			return fmt.Errorf("%w: %s", ErrDuplicateComponent, c.IngredientID)
		}
		seen[c.IngredientID] = true
		components = append(components, c)
	}

	item := finance.MenuItem{
		ID:             id,
		Name:           name,
		Price:          d.Price,
		DeliveryPrice:  d.DeliveryPrice,
		Components:     components,
		WastagePercent: r.wastageDefault(),
	}
	if item.DeliveryPrice == 0 {
		item.DeliveryPrice = item.Price
	}
	if d.WastagePercent != nil {
		item.WastagePercent = *d.WastagePercent
	}
	item.TotalCost = finance.RecipeCost(item, finance.IndexIngredients(s.Snapshot.Ingredients)).TotalCost

	if id == "" {
		item.ID = r.id()
		s.Snapshot.Menu = append(s.Snapshot.Menu, item)
		return nil
	}
	for i := range s.Snapshot.Menu {
		if s.Snapshot.Menu[i].ID == id {
			s.Snapshot.Menu[i] = item
			return nil
		}
	}
	return fmt.Errorf("menu item %q: %w", id, ErrNotFound)
}

func (r *Reducer) addRole(s *State, role *finance.Role) {
	next := finance.Role{Type: finance.CompensationHourly, Headcount: 1}
	if role != nil {
		next = *role
	}
	next.ID = r.id()
	s.Snapshot.Roles = append(s.Snapshot.Roles, next)
}

func updateRole(s *State, id string, role *finance.Role) error {
	if role == nil {
		return ErrMissingPayload
	}
	for i := range s.Snapshot.Roles {
		if s.Snapshot.Roles[i].ID == id {
			updated := *role
			updated.ID = id
			s.Snapshot.Roles[i] = updated
			return nil
		}
	}
	return fmt.Errorf("role %q: %w", id, ErrNotFound)
}

func setSalesQuantity(s *State, ch finance.Channel, itemID string, qty float64) error {
	if qty < 0 {
		qty = 0
	}
	switch ch {
	case finance.ChannelInStore:
		s.Snapshot.Sales.InStore[itemID] = qty
	case finance.ChannelDelivery:
		s.Snapshot.Sales.Delivery[itemID] = qty
	default:
		return ErrInvalidChannel
	}
	return nil
}

func setPeriod(s *State, p finance.Period) error {
	if p != finance.PeriodDay && p != finance.PeriodMonth {
		return ErrInvalidPeriod
	}
	s.Snapshot.Period = p
	return nil
}

func updateOtherExpense(s *State, idx int, e *finance.OtherExpense) error {
	if e == nil {
		return ErrMissingPayload
	}
	if idx < 0 || idx >= len(s.Snapshot.Opex.Others) {
		return ErrIndexOutOfRange
	}
	s.Snapshot.Opex.Others[idx] = *e
	return nil
}

func removeOtherExpense(s *State, idx int) error {
	others := s.Snapshot.Opex.Others
	if idx < 0 || idx >= len(others) {
		return ErrIndexOutOfRange
	}
	s.Snapshot.Opex.Others = append(others[:idx:idx], others[idx+1:]...)
	return nil
}

// removeByID drops every element whose id matches. References to it elsewhere are left as-is.
func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
