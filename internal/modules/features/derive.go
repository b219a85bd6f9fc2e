// README: Pure derivation of pricing features from a validated trip record.
package features

// Fixed per-trip taxes.
const (
	mtaTax               = 0.50
	improvementSurcharge = 1.00
)

// Flat surcharge for trips touching LaGuardia.
const laGuardiaSurcharge = 5.00

// Derive maps a trip record to its fully enriched form. It is a total
// function with no failure modes: input is validated at the HTTP boundary
// and not re-checked here. Every rule group is evaluated independently.
func Derive(t TripRecord) EnrichedRecord {
	r := EnrichedRecord{TripRecord: t}

	r.RateCode = rateCode(t)
	r.AirportFee = airportFee(t)
	r.AirportSurcharge = airportSurcharge(t)
	r.RushhourSurcharge = rushhourSurcharge(t.PickupHour)
	r.CongestionSurcharge = congestionSurcharge(t)
	r.MTATax = mtaTax
	r.ImprovementSurcharge = improvementSurcharge

	r.IsLaGuardia = t.PickupLocationID == zoneLaGuardia || t.DropoffLocationID == zoneLaGuardia
	r.IsPeaktime = t.PickupHour >= 16 && t.PickupHour <= 19
	r.AverageSpeedMPH = averageSpeedMPH(t.TripDistance, t.DurationMin)

	return r
}

// rateCode classifies the trip. Exactly one branch fires; the JFK check takes
// precedence over the negotiated-dropoff check.
func rateCode(t TripRecord) int {
	switch {
	case t.PickupLocationID == zoneJFK || t.DropoffLocationID == zoneJFK:
		return RateJFK
	case negotiatedZones[t.DropoffLocationID]:
		return RateNegotiated
	default:
		return RateStandard
	}
}

// airportFee applies only to JFK trips and is seasonal.
func airportFee(t TripRecord) float64 {
	if t.PickupLocationID != zoneJFK && t.DropoffLocationID != zoneJFK {
		return 0
	}
	switch {
	case t.PickupMonth >= 1 && t.PickupMonth <= 3:
		return 1.25
	case t.PickupMonth >= 4 && t.PickupMonth <= 12:
		return 1.75
	default:
		return 0
	}
}

func airportSurcharge(t TripRecord) float64 {
	if t.PickupLocationID == zoneLaGuardia || t.DropoffLocationID == zoneLaGuardia {
		return laGuardiaSurcharge
	}
	return 0
}

// rushhourSurcharge partitions all 24 hours into four bands. The zero
// fallthrough is unreachable for validated input and kept for out-of-contract
// callers.
func rushhourSurcharge(hour int) float64 {
	switch {
	case hour >= 0 && hour <= 5:
		return 1.00
	case hour >= 6 && hour <= 15:
		return 0.50
	case hour >= 16 && hour <= 19:
		return 2.50
	case hour >= 20 && hour <= 23:
		return 1.00
	default:
		return 0
	}
}

func congestionSurcharge(t TripRecord) float64 {
	if congestionZones[t.PickupLocationID] || congestionZones[t.DropoffLocationID] {
		return 2.50
	}
	return 0
}

// averageSpeedMPH guards the zero-duration case rather than dividing by zero.
func averageSpeedMPH(distance, durationMin float64) float64 {
	if durationMin <= 0 {
		return 0
	}
	return distance / (durationMin / 60.0)
}
