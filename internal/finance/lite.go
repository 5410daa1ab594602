package finance

import "math"

// LiteInput is the scalar input of the quick estimate.
type LiteInput struct {
	Investment        float64 `json:"investment"`
	RecoveryYears     float64 `json:"recoveryYears"`
	Rent              float64 `json:"rent"`
	Payroll           float64 `json:"payroll"`
	OtherOps          float64 `json:"otherOps"`
	RevenueInputMode  Period  `json:"revenueInputMode"`
	StoreRevenue      float64 `json:"storeRevenue"`
	AppRevenue        float64 `json:"appRevenue"`
	AppCommissionRate float64 `json:"appCommissionRate"`
	COGSRate          float64 `json:"cogsRate"`
}

// LiteResult is the monthly quick estimate.
type LiteResult struct {
	MonthlyDepreciation float64 `json:"monthlyDepreciation"`
	MonthlyFixedOps     float64 `json:"monthlyFixedOps"`
	MonthlyStoreRevenue float64 `json:"monthlyStoreRevenue"`
	MonthlyAppRevenue   float64 `json:"monthlyAppRevenue"`
	TotalMonthlyRevenue float64 `json:"totalMonthlyRevenue"`
	MonthlyAppFees      float64 `json:"monthlyAppFees"`
	MonthlyCOGS         float64 `json:"monthlyCogs"`
	OperatingProfit     float64 `json:"operatingProfit"`
	NetProfit           float64 `json:"netProfit"`
}

// Lite computes the quick estimate. It applies one blended COGS rate to total
// revenue and does no VAT extraction or break-even analysis.
func Lite(in LiteInput) LiteResult {
	dep := Round(in.Investment / (in.RecoveryYears * 12))
	if math.IsNaN(dep) || math.IsInf(dep, 0) {
		dep = 0
	}

	mult := in.RevenueInputMode.Multiplier()
	out := LiteResult{
		MonthlyDepreciation: dep,
		MonthlyFixedOps:     in.Rent + in.Payroll + in.OtherOps,
		MonthlyStoreRevenue: in.StoreRevenue * mult,
		MonthlyAppRevenue:   in.AppRevenue * mult,
	}
	out.TotalMonthlyRevenue = out.MonthlyStoreRevenue + out.MonthlyAppRevenue
	out.MonthlyAppFees = Round(out.MonthlyAppRevenue * (in.AppCommissionRate / 100))
	out.MonthlyCOGS = Round(out.TotalMonthlyRevenue * (in.COGSRate / 100))
	out.OperatingProfit = out.TotalMonthlyRevenue - out.MonthlyAppFees - out.MonthlyCOGS - out.MonthlyFixedOps
	out.NetProfit = out.OperatingProfit - out.MonthlyDepreciation
	return out
}
