package models

// UserProfile drives personalization. Optional fields carry documented
// defaults applied via creasty/defaults before validation.
type UserProfile struct {
	RiskTolerance     string  `json:"riskTolerance" yaml:"risk_tolerance" default:"medium" validate:"oneof=low medium high"`
	InvestmentHorizon string  `json:"investmentHorizon" yaml:"investment_horizon" default:"medium" validate:"oneof=short medium long"`
	InvestmentAmount  float64 `json:"investmentAmount" yaml:"investment_amount" default:"10000" validate:"gt=0"`
	PreferredAssets   string  `json:"preferredAssets" yaml:"preferred_assets" default:"both" validate:"oneof=stocks forex both"`
}

// Leverage maps risk tolerance to the leverage assumed for forex scoring.
func (p *UserProfile) Leverage() float64 {
	switch p.RiskTolerance {
	case "low":
		return 10
	case "high":
		return 100
	default:
		return 50
	}
}

// Timeframe maps the investment horizon to the display timeframe label.
func (p *UserProfile) Timeframe() string {
	switch p.InvestmentHorizon {
	case "short":
		return "1W"
	case "long":
		return "3M"
	default:
		return "1M"
	}
}
