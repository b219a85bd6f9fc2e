// README: Per-request prediction state and the externally visible breakdown.
package predict

// PredictionState holds the raw model outputs for one request. It is built
// and discarded per call, never persisted, never shared.
type PredictionState struct {
	FareAmount  float64
	TollsAmount float64
	TipAmount   float64
	TotalAmount float64
}

// Breakdown is the itemized, 2-decimal-rounded decomposition of the total
// fare. Total is the exact sum of the other nine components.
type Breakdown struct {
	Fare                 float64 `json:"fare"`
	Tip                  float64 `json:"tip"`
	Tolls                float64 `json:"tolls"`
	AirportFee           float64 `json:"airport_fee"`
	AirportSurcharge     float64 `json:"airport_surcharge"`
	RushhourSurcharge    float64 `json:"rushhour_surcharge"`
	CongestionSurcharge  float64 `json:"congestion_surcharge"`
	ImprovementSurcharge float64 `json:"improvement_surcharge"`
	MTATax               float64 `json:"mta_tax"`
	Total                float64 `json:"total"`
}
