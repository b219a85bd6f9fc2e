// README: Scorer contract, named feature sets, and ensemble availability status.
package ensemble

import "errors"

// ErrModelsUnavailable is returned by consumers when startup loading was
// degraded. Predicting with only some models loaded is never attempted.
var ErrModelsUnavailable = errors.New("models unavailable")

// Scorer is an opaque pre-trained scoring function. Implementations are
// immutable after load and safe for concurrent use; scoring holds no state.
type Scorer interface {
	// Score consumes exactly the named feature subset the model was trained
	// on and returns a scalar. A missing feature is an error, not a default.
	Score(features map[string]float64) (float64, error)
}

// Feature orders the artifacts were trained on. Order matters: scorers build
// positional vectors from these names.
var (
	FareFeatures = []string{
		"trip_distance", "rate_code", "duration_min", "pickup_hour",
		"pickup_day", "pickup_month", "average_speed_mph", "is_peaktime",
		"is_laguardia",
	}

	TollsFeatures = []string{
		"trip_distance", "rate_code", "pickup_location_id", "dropoff_location_id",
		"duration_min", "is_peaktime", "pickup_day", "average_speed_mph",
		"is_laguardia", "congestion_surcharge",
	}

	// The fare_amount slot carries the predicted fare, not the raw input.
	TipFeatures = []string{
		"trip_distance", "rate_code", "pickup_location_id", "dropoff_location_id",
		"duration_min", "is_peaktime", "pickup_day", "average_speed_mph",
		"is_laguardia", "fare_amount",
	}
)

// Ensemble bundles the five scorers the composer calls in fixed order.
type Ensemble struct {
	FareReg  Scorer
	TollsClf Scorer
	TollsReg Scorer
	TipClf   Scorer
	TipReg   Scorer
}

// Status reports process-wide model availability. Set once at startup and
// read-only afterwards.
type Status struct {
	ModelsLoaded bool
	Accelerated  bool
}
