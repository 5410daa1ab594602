package finance

// DefaultVATPercent is the value-added tax rate embedded in gross prices.
const DefaultVATPercent = 8.0

// Policy holds the rates the P&L calculator is parameterized with.
type Policy struct {
	VATPercent float64
}

// DefaultPolicy returns the policy with the default 8% VAT.
func DefaultPolicy() Policy {
	return Policy{VATPercent: DefaultVATPercent}
}

func (p Policy) vatFactor() float64 {
	return 1 + p.VATPercent/100
}

// PnLInput is the monthly input of the P&L calculator.
type PnLInput struct {
	GrossRevenue float64
	GrossCOGS    float64
	Opex         Opex
	Roles        []Role
	Capex        Capex
}

// PnL is the monthly profit and loss estimate. GrossMarginPercent is a fraction (0.65 = 65%).
type PnL struct {
	GrossRevenue             float64 `json:"grossRevenue"`
	GrossCOGS                float64 `json:"grossCogs"`
	NetRevenue               float64 `json:"netRevenue"`
	NetCOGS                  float64 `json:"netCogs"`
	VATOutput                float64 `json:"vatOutput"`
	VATInput                 float64 `json:"vatInput"`
	VATPayable               float64 `json:"vatPayable"`
	GrossProfit              float64 `json:"grossProfit"`
	OpexFixed                float64 `json:"opexFixed"`
	PayrollCost              float64 `json:"payrollCost"`
	MonthlyMaintenance       float64 `json:"monthlyMaintenance"`
	MonthlyDepreciation      float64 `json:"monthlyDepreciation"`
	TotalOperatingCost       float64 `json:"totalOperatingCost"`
	NetProfit                float64 `json:"netProfit"`
	GrossMarginPercent       float64 `json:"grossMarginPercent"`
	BreakEvenNetRevenue      float64 `json:"breakEvenNetRevenue"`
	BreakEvenGrossRevenue    float64 `json:"breakEvenGrossRevenue"`
	BreakEvenProgressPercent float64 `json:"breakEvenProgressPercent"`
}

// RoleCost is the monthly cost of one payroll role. A fixed role with a zero
// headcount is costed as a single head.
func RoleCost(r Role) float64 {
	if r.Type == CompensationHourly {
		return r.HourlyRate * r.TotalHours
	}
	count := r.Headcount
	if count == 0 {
		count = 1
	}
	return r.FixedSalary * float64(count)
}

// PayrollCost sums RoleCost over roles.
func PayrollCost(roles []Role) float64 {
	total := 0.0
	for _, r := range roles {
		total += RoleCost(r)
	}
	return total
}

// OpexFixed sums rent, utilities, marketing and every ad-hoc expense.
func OpexFixed(o Opex) float64 {
	others := 0.0
	for _, e := range o.Others {
		others += e.Amount
	}
	return o.Rent + o.Utilities + o.Marketing + others
}

// MonthlyDepreciation is straight-line depreciation of the investment over the
// recovery horizon. RecoveryYears must be validated positive by the caller.
func MonthlyDepreciation(c Capex) float64 {
	return c.TotalInvestment / (c.RecoveryYears * 12)
}

// MonthlyMaintenance amortizes the yearly maintenance budget.
func MonthlyMaintenance(c Capex) float64 {
	return c.YearlyMaintenance / 12
}

// Burden is the rounded monthly capital charge shown while entering capex.
type Burden struct {
	Depreciation float64 `json:"depreciation"`
	Maintenance  float64 `json:"maintenance"`
	Total        float64 `json:"total"`
}

// CapexBurden rounds depreciation and maintenance to whole currency units.
func CapexBurden(c Capex) Burden {
	dep := Round(MonthlyDepreciation(c))
	maint := Round(MonthlyMaintenance(c))
	return Burden{Depreciation: dep, Maintenance: maint, Total: dep + maint}
}

// ComputePnL derives the monthly P&L and break-even point from gross sales figures.
// VAT is stripped from both revenue and COGS; the VAT payable is reported only.
func (p Policy) ComputePnL(in PnLInput) PnL {
	f := p.vatFactor()

	out := PnL{
		GrossRevenue: in.GrossRevenue,
		GrossCOGS:    in.GrossCOGS,
		NetRevenue:   in.GrossRevenue / f,
		NetCOGS:      in.GrossCOGS / f,
	}
	out.VATOutput = in.GrossRevenue - out.NetRevenue
	out.VATInput = in.GrossCOGS - out.NetCOGS
	out.VATPayable = out.VATOutput - out.VATInput
	out.GrossProfit = out.NetRevenue - out.NetCOGS

	out.MonthlyDepreciation = MonthlyDepreciation(in.Capex)
	out.MonthlyMaintenance = MonthlyMaintenance(in.Capex)
	out.OpexFixed = OpexFixed(in.Opex)
	out.PayrollCost = PayrollCost(in.Roles)
	out.TotalOperatingCost = out.OpexFixed + out.PayrollCost + out.MonthlyMaintenance
	out.NetProfit = out.GrossProfit - out.TotalOperatingCost - out.MonthlyDepreciation

	if out.NetRevenue > 0 {
		out.GrossMarginPercent = out.GrossProfit / out.NetRevenue
	}
	if out.GrossMarginPercent > 0 {
		out.BreakEvenNetRevenue = out.TotalOperatingCost / out.GrossMarginPercent
	}
	out.BreakEvenGrossRevenue = out.BreakEvenNetRevenue * f
	if out.BreakEvenGrossRevenue > 0 {
		out.BreakEvenProgressPercent = in.GrossRevenue / out.BreakEvenGrossRevenue * 100
	}

	return out
}
