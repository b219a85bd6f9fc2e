// README: Prediction audit log backed by PostgreSQL.
package predict

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/modules/features"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append records one served prediction. Best effort: the caller logs and
// continues on failure, since the audit trail must never block a response.
func (s *Store) Append(ctx context.Context, trip features.TripRecord, b Breakdown) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO predictions (
			trip_distance, pickup_location_id, dropoff_location_id,
			duration_min, pickup_hour, pickup_day, pickup_month,
			fare, tip, tolls,
			airport_fee, airport_surcharge, rushhour_surcharge,
			congestion_surcharge, improvement_surcharge, mta_tax,
			total, created_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10,
			$11, $12, $13,
			$14, $15, $16,
			$17, now()
		)`,
		trip.TripDistance,
		trip.PickupLocationID,
		trip.DropoffLocationID,
		trip.DurationMin,
		trip.PickupHour,
		trip.PickupDay,
		trip.PickupMonth,
		b.Fare,
		b.Tip,
		b.Tolls,
		b.AirportFee,
		b.AirportSurcharge,
		b.RushhourSurcharge,
		b.CongestionSurcharge,
		b.ImprovementSurcharge,
		b.MTATax,
		b.Total,
	)
	return err
}
