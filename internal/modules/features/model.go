// README: Trip record and enriched feature record definitions.
package features

// TLC location zone ids that drive rate classification and surcharges.
const (
	zoneJFK       = 132
	zoneLaGuardia = 138
)

// Dropoff zones billed at the negotiated flat rate.
var negotiatedZones = map[int]bool{265: true, 86: true}

// Zones subject to the flat congestion surcharge.
var congestionZones = map[int]bool{236: true, 237: true, 238: true, 239: true}

// Rate codes per the TLC trip schema. Only the three classes the deriver can
// produce are listed.
const (
	RateStandard   = 1
	RateJFK        = 2
	RateNegotiated = 4
)

// TripRecord is a validated trip as received from the HTTP boundary.
// Immutable once received; the deriver never writes back into it.
type TripRecord struct {
	TripDistance      float64
	PickupLocationID  int
	DropoffLocationID int
	DurationMin       float64
	PickupHour        int
	PickupDay         int
	PickupMonth       int
}

// EnrichedRecord is a TripRecord plus every derived pricing feature the
// models and the composer consume.
type EnrichedRecord struct {
	TripRecord

	RateCode             int
	AirportFee           float64
	AirportSurcharge     float64
	RushhourSurcharge    float64
	CongestionSurcharge  float64
	MTATax               float64
	ImprovementSurcharge float64
	IsLaGuardia          bool
	IsPeaktime           bool
	AverageSpeedMPH      float64
}
