// README: Rounding policy for the reported breakdown.
package predict

import (
	"farecast/internal/modules/features"
	"farecast/internal/types"
)

// formatBreakdown rounds every component independently to cents, half away
// from zero, and reports the total as the exact cent-sum of the rounded
// components. This may differ from round(sum(raw)) by a cent or two; the
// difference is part of the external contract and must not be "fixed" by
// rounding the raw sum instead.
func formatBreakdown(st PredictionState, rec features.EnrichedRecord) Breakdown {
	b := Breakdown{
		Fare:                 types.RoundCurrency(st.FareAmount),
		Tip:                  types.RoundCurrency(st.TipAmount),
		Tolls:                types.RoundCurrency(st.TollsAmount),
		AirportFee:           types.RoundCurrency(rec.AirportFee),
		AirportSurcharge:     types.RoundCurrency(rec.AirportSurcharge),
		RushhourSurcharge:    types.RoundCurrency(rec.RushhourSurcharge),
		CongestionSurcharge:  types.RoundCurrency(rec.CongestionSurcharge),
		ImprovementSurcharge: types.RoundCurrency(rec.ImprovementSurcharge),
		MTATax:               types.RoundCurrency(rec.MTATax),
	}

	total := types.Cents(b.Fare) +
		types.Cents(b.Tip) +
		types.Cents(b.Tolls) +
		types.Cents(b.AirportFee) +
		types.Cents(b.AirportSurcharge) +
		types.Cents(b.RushhourSurcharge) +
		types.Cents(b.CongestionSurcharge) +
		types.Cents(b.ImprovementSurcharge) +
		types.Cents(b.MTATax)
	b.Total = types.Dollars(total)

	return b
}
