package finance

// UnitKind is the base measurement unit an ingredient is costed in.
type UnitKind string

const (
	UnitVolume UnitKind = "ml"
	UnitMass   UnitKind = "g"
	UnitCount  UnitKind = "pcs"
)

// Ingredient is a purchasable raw material. ConversionRate and CostPerBaseUnit are derived.
type Ingredient struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Kind            UnitKind `json:"type"`
	PurchaseUnit    string   `json:"unitIn"`
	PurchasePrice   float64  `json:"unitPrice"`
	PackQuantity    float64  `json:"packQuantity"`
	UnitSize        float64  `json:"unitSize"`
	ConversionRate  float64  `json:"conversionRate"`
	CostPerBaseUnit float64  `json:"costPerBaseUnit"`
}

// RecipeComponent is an ingredient quantity expressed in the ingredient's base unit.
type RecipeComponent struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// MenuItem is a sellable product. TotalCost is derived from its components.
type MenuItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"sellingPrice"`
	DeliveryPrice  float64           `json:"sellingPriceApp"`
	Components     []RecipeComponent `json:"components"`
	WastagePercent float64           `json:"wastagePercent"`
	TotalCost      float64           `json:"totalCost"`
}

// AppPrice returns the delivery price, falling back to the in-store price when unset.
func (m MenuItem) AppPrice() float64 {
	if m.DeliveryPrice == 0 {
		return m.Price
	}
	return m.DeliveryPrice
}

// Compensation is how a payroll role is paid.
type Compensation string

const (
	CompensationHourly Compensation = "hourly"
	CompensationFixed  Compensation = "fixed"
)

// Role is a staffing line. TotalHours is the aggregate across every person in the role.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        Compensation `json:"type"`
	Headcount   int          `json:"count"`
	HourlyRate  float64      `json:"hourlyRate"`
	TotalHours  float64      `json:"totalHours"`
	FixedSalary float64      `json:"fixedSalary"`
}

// SalesData maps menu item ids to quantities sold per period, per channel.
type SalesData struct {
	InStore  map[string]float64 `json:"inStore"`
	Delivery map[string]float64 `json:"delivery"`
}

// Period is the simulation period quantities and revenues are entered in.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// DaysPerMonth is the only calendar model: a month is always 30 days.
const DaysPerMonth = 30

// Multiplier converts a per-period value to a monthly one.
func (p Period) Multiplier() float64 {
	if p == PeriodDay {
		return DaysPerMonth
	}
	return 1
}

// Discounts are percentages taken off gross revenue per channel.
type Discounts struct {
	Shop float64 `json:"shop"`
	App  float64 `json:"app"`
}

// Capex holds the capital inputs.
type Capex struct {
	TotalInvestment   float64 `json:"totalInvestment"`
	RecoveryYears     float64 `json:"recoveryYears"`
	YearlyMaintenance float64 `json:"yearlyMaintenance"`
}

// OtherExpense is a named ad-hoc monthly expense.
type OtherExpense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Opex holds fixed monthly operating costs.
type Opex struct {
	Rent      float64        `json:"rent"`
	Utilities float64        `json:"utilities"`
	Marketing float64        `json:"marketing"`
	Others    []OtherExpense `json:"others"`
}

// Snapshot is the complete input of the full estimation pipeline.
type Snapshot struct {
	Ingredients []Ingredient `json:"ingredients"`
	Menu        []MenuItem   `json:"menu"`
	Sales       SalesData    `json:"sales"`
	Period      Period       `json:"simulationMode"`
	Discounts   Discounts    `json:"discounts"`
	Capex       Capex        `json:"capex"`
	Opex        Opex         `json:"opex"`
	Roles       []Role       `json:"roles"`
}
