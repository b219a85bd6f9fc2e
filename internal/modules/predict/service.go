// README: Prediction service composes model outputs into an auditable fare breakdown.
package predict

import (
	"context"
	"fmt"
	"log"
	"math"

	"farecast/internal/modules/ensemble"
	"farecast/internal/modules/features"
)

// Flat fare applied to JFK trips regardless of the regressor output.
const jfkFlatFare = 70.00

type Service struct {
	models *ensemble.Ensemble
	status ensemble.Status
	store  *Store // optional audit log, nil when no DB is configured
	cache  *Cache // optional response cache, nil when no Redis is configured
}

func NewService(models *ensemble.Ensemble, status ensemble.Status, store *Store, cache *Cache) *Service {
	return &Service{models: models, status: status, store: store, cache: cache}
}

// Status reports the availability flags set at startup.
func (s *Service) Status() ensemble.Status {
	return s.status
}

// Predict derives features from the validated trip, runs the model cascade,
// and formats the rounded breakdown. Fails fast with ErrModelsUnavailable
// when startup loading was degraded; partial predictions are never attempted.
func (s *Service) Predict(ctx context.Context, trip features.TripRecord) (Breakdown, error) {
	if !s.status.ModelsLoaded || s.models == nil {
		return Breakdown{}, ensemble.ErrModelsUnavailable
	}

	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, trip); ok {
			return b, nil
		}
	}

	rec := features.Derive(trip)
	state, err := compose(rec, s.models)
	if err != nil {
		return Breakdown{}, err
	}
	b := formatBreakdown(state, rec)

	if s.store != nil {
		if err := s.store.Append(ctx, trip, b); err != nil {
			log.Printf("predict: audit append: %v", err)
		}
	}
	if s.cache != nil {
		s.cache.Set(ctx, trip, b)
	}
	return b, nil
}

// compose runs the cascade in its fixed dependency order: fare first, then
// tolls, then tip, which consumes the predicted fare rather than any raw
// input. Scoring failures surface as errors; nothing is retried or defaulted.
func compose(rec features.EnrichedRecord, models *ensemble.Ensemble) (PredictionState, error) {
	var st PredictionState

	rawFare, err := models.FareReg.Score(fareFeatures(rec))
	if err != nil {
		return st, fmt.Errorf("fare model: %w", err)
	}
	st.FareAmount = rawFare
	if rec.RateCode == features.RateJFK {
		st.FareAmount = jfkFlatFare
	}
	st.FareAmount = math.Max(0, st.FareAmount)

	tollsFeats := tollsFeatures(rec)
	tollsScore, err := models.TollsClf.Score(tollsFeats)
	if err != nil {
		return st, fmt.Errorf("tolls classifier: %w", err)
	}
	tollsMagnitude, err := models.TollsReg.Score(tollsFeats)
	if err != nil {
		return st, fmt.Errorf("tolls regressor: %w", err)
	}
	st.TollsAmount = math.Max(0, gate(tollsScore)*tollsMagnitude)

	tipFeats := tipFeatures(rec, st.FareAmount)
	tipScore, err := models.TipClf.Score(tipFeats)
	if err != nil {
		return st, fmt.Errorf("tip classifier: %w", err)
	}
	tipRate, err := models.TipReg.Score(tipFeats)
	if err != nil {
		return st, fmt.Errorf("tip regressor: %w", err)
	}
	st.TipAmount = math.Max(0, st.FareAmount*tipRate*gate(tipScore))

	st.TotalAmount = st.FareAmount +
		rec.AirportFee +
		rec.AirportSurcharge +
		rec.RushhourSurcharge +
		rec.CongestionSurcharge +
		rec.ImprovementSurcharge +
		rec.MTATax +
		st.TollsAmount +
		st.TipAmount

	return st, nil
}

// gate binarizes a classifier score: probabilities at or above 0.5 count as
// the event occurring. The classifier suppresses its paired regressor's
// output entirely when the event is predicted not to occur.
func gate(score float64) float64 {
	if score >= 0.5 {
		return 1
	}
	return 0
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func fareFeatures(rec features.EnrichedRecord) map[string]float64 {
	return map[string]float64{
		"trip_distance":     rec.TripDistance,
		"rate_code":         float64(rec.RateCode),
		"duration_min":      rec.DurationMin,
		"pickup_hour":       float64(rec.PickupHour),
		"pickup_day":        float64(rec.PickupDay),
		"pickup_month":      float64(rec.PickupMonth),
		"average_speed_mph": rec.AverageSpeedMPH,
		"is_peaktime":       boolFeature(rec.IsPeaktime),
		"is_laguardia":      boolFeature(rec.IsLaGuardia),
	}
}

func tollsFeatures(rec features.EnrichedRecord) map[string]float64 {
	return map[string]float64{
		"trip_distance":        rec.TripDistance,
		"rate_code":            float64(rec.RateCode),
		"pickup_location_id":   float64(rec.PickupLocationID),
		"dropoff_location_id":  float64(rec.DropoffLocationID),
		"duration_min":         rec.DurationMin,
		"is_peaktime":          boolFeature(rec.IsPeaktime),
		"pickup_day":           float64(rec.PickupDay),
		"average_speed_mph":    rec.AverageSpeedMPH,
		"is_laguardia":         boolFeature(rec.IsLaGuardia),
		"congestion_surcharge": rec.CongestionSurcharge,
	}
}

func tipFeatures(rec features.EnrichedRecord, predictedFare float64) map[string]float64 {
	return map[string]float64{
		"trip_distance":       rec.TripDistance,
		"rate_code":           float64(rec.RateCode),
		"pickup_location_id":  float64(rec.PickupLocationID),
		"dropoff_location_id": float64(rec.DropoffLocationID),
		"duration_min":        rec.DurationMin,
		"is_peaktime":         boolFeature(rec.IsPeaktime),
		"pickup_day":          float64(rec.PickupDay),
		"average_speed_mph":   rec.AverageSpeedMPH,
		"is_laguardia":        boolFeature(rec.IsLaGuardia),
		"fare_amount":         predictedFare,
	}
}
