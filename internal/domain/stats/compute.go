package stats

import (
	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/reminders"

	"github.com/shopspring/decimal"
)

// Compute es total: con cero recordatorios la tasa de conversión es 0.
func Compute(ps []pets.Pet, rs []reminders.Reminder) Stats {
	converted := 0
	for _, r := range rs {
		if r.Status == reminders.StatusConverted {
			converted++
		}
	}

	rate := 0.0
	if len(rs) > 0 {
		rate = float64(converted) / float64(len(rs)) * 100
	}

	return Stats{
		TotalPets:        len(ps),
		RemindersSent:    len(rs),
		Converted:        converted,
		ConversionRate:   rate,
		EstimatedRevenue: RevenuePerConversion.Mul(decimal.NewFromInt(int64(converted))),
	}
}
