package stats

import "github.com/shopspring/decimal"

// RevenuePerConversion es el ingreso estimado por recordatorio convertido.
var RevenuePerConversion = decimal.NewFromInt(5000)

// Stats son métricas derivadas; nunca se persisten.
type Stats struct {
	TotalPets        int             `json:"totalPets"`
	RemindersSent    int             `json:"remindersSent"`
	Converted        int             `json:"converted"`
	ConversionRate   float64         `json:"conversionRate"`
	EstimatedRevenue decimal.Decimal `json:"estimatedRevenue"`
}
