package features

import (
	"math"
	"testing"
)

func TestDerive_RateCode(t *testing.T) {
	tests := []struct {
		name string
		trip TripRecord
		want int
	}{
		{
			name: "JFK pickup",
			trip: TripRecord{PickupLocationID: 132, DropoffLocationID: 50},
			want: RateJFK,
		},
		{
			name: "JFK dropoff",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 132},
			want: RateJFK,
		},
		{
			name: "JFK takes precedence over negotiated dropoff",
			trip: TripRecord{PickupLocationID: 132, DropoffLocationID: 265},
			want: RateJFK,
		},
		{
			name: "negotiated dropoff 265",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 265},
			want: RateNegotiated,
		},
		{
			name: "negotiated dropoff 86",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 86},
			want: RateNegotiated,
		},
		{
			name: "negotiated pickup does not reclassify",
			trip: TripRecord{PickupLocationID: 265, DropoffLocationID: 50},
			want: RateStandard,
		},
		{
			name: "standard trip",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 51},
			want: RateStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.trip)
			if got.RateCode != tt.want {
				t.Errorf("RateCode = %d, want %d", got.RateCode, tt.want)
			}
		})
	}
}

func TestDerive_AirportFee(t *testing.T) {
	tests := []struct {
		name string
		trip TripRecord
		want float64
	}{
		{
			name: "JFK winter season",
			trip: TripRecord{PickupLocationID: 132, DropoffLocationID: 50, PickupMonth: 2},
			want: 1.25,
		},
		{
			name: "JFK rest of year",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 132, PickupMonth: 6},
			want: 1.75,
		},
		{
			name: "JFK season boundary month 3",
			trip: TripRecord{PickupLocationID: 132, DropoffLocationID: 50, PickupMonth: 3},
			want: 1.25,
		},
		{
			name: "JFK season boundary month 4",
			trip: TripRecord{PickupLocationID: 132, DropoffLocationID: 50, PickupMonth: 4},
			want: 1.75,
		},
		{
			name: "no JFK involvement",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 51, PickupMonth: 6},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.trip)
			if got.AirportFee != tt.want {
				t.Errorf("AirportFee = %f, want %f", got.AirportFee, tt.want)
			}
		})
	}
}

func TestDerive_AirportSurchargeAndLaGuardiaFlag(t *testing.T) {
	tests := []struct {
		name     string
		trip     TripRecord
		wantFee  float64
		wantFlag bool
	}{
		{
			name:     "LaGuardia pickup",
			trip:     TripRecord{PickupLocationID: 138, DropoffLocationID: 50},
			wantFee:  5.00,
			wantFlag: true,
		},
		{
			name:     "LaGuardia dropoff",
			trip:     TripRecord{PickupLocationID: 50, DropoffLocationID: 138},
			wantFee:  5.00,
			wantFlag: true,
		},
		{
			name:     "no LaGuardia",
			trip:     TripRecord{PickupLocationID: 50, DropoffLocationID: 51},
			wantFee:  0,
			wantFlag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.trip)
			if got.AirportSurcharge != tt.wantFee {
				t.Errorf("AirportSurcharge = %f, want %f", got.AirportSurcharge, tt.wantFee)
			}
			if got.IsLaGuardia != tt.wantFlag {
				t.Errorf("IsLaGuardia = %v, want %v", got.IsLaGuardia, tt.wantFlag)
			}
		})
	}
}

// TestDerive_RushhourBands walks every hour of the day: the four bands must
// cover 0-23 with no gaps.
func TestDerive_RushhourBands(t *testing.T) {
	want := func(hour int) float64 {
		switch {
		case hour <= 5:
			return 1.00
		case hour <= 15:
			return 0.50
		case hour <= 19:
			return 2.50
		default:
			return 1.00
		}
	}

	for hour := 0; hour < 24; hour++ {
		got := Derive(TripRecord{PickupHour: hour})
		if got.RushhourSurcharge != want(hour) {
			t.Errorf("hour %d: RushhourSurcharge = %f, want %f", hour, got.RushhourSurcharge, want(hour))
		}
		wantPeak := hour >= 16 && hour <= 19
		if got.IsPeaktime != wantPeak {
			t.Errorf("hour %d: IsPeaktime = %v, want %v", hour, got.IsPeaktime, wantPeak)
		}
	}
}

func TestDerive_CongestionSurcharge(t *testing.T) {
	tests := []struct {
		name string
		trip TripRecord
		want float64
	}{
		{
			name: "pickup in congestion zone",
			trip: TripRecord{PickupLocationID: 236, DropoffLocationID: 50},
			want: 2.50,
		},
		{
			name: "dropoff in congestion zone",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 239},
			want: 2.50,
		},
		{
			name: "both endpoints in zone charge once",
			trip: TripRecord{PickupLocationID: 237, DropoffLocationID: 238},
			want: 2.50,
		},
		{
			name: "outside congestion zones",
			trip: TripRecord{PickupLocationID: 50, DropoffLocationID: 51},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.trip)
			if got.CongestionSurcharge != tt.want {
				t.Errorf("CongestionSurcharge = %f, want %f", got.CongestionSurcharge, tt.want)
			}
		})
	}
}

func TestDerive_AverageSpeed(t *testing.T) {
	got := Derive(TripRecord{TripDistance: 17.5, DurationMin: 55})
	want := 17.5 / (55.0 / 60.0)
	if math.Abs(got.AverageSpeedMPH-want) > 1e-9 {
		t.Errorf("AverageSpeedMPH = %f, want %f", got.AverageSpeedMPH, want)
	}
}

func TestDerive_ZeroDurationSpeedGuard(t *testing.T) {
	got := Derive(TripRecord{TripDistance: 10, DurationMin: 0})
	if got.AverageSpeedMPH != 0 {
		t.Errorf("AverageSpeedMPH = %f, want 0", got.AverageSpeedMPH)
	}
}

func TestDerive_FixedTaxes(t *testing.T) {
	got := Derive(TripRecord{PickupLocationID: 50, DropoffLocationID: 51})
	if got.MTATax != 0.50 {
		t.Errorf("MTATax = %f, want 0.50", got.MTATax)
	}
	if got.ImprovementSurcharge != 1.00 {
		t.Errorf("ImprovementSurcharge = %f, want 1.00", got.ImprovementSurcharge)
	}
}

// TestDerive_JFKScenario mirrors the canonical example trip: JFK pickup to a
// congestion-zone dropoff at evening rush in June.
func TestDerive_JFKScenario(t *testing.T) {
	got := Derive(TripRecord{
		TripDistance:      17.5,
		PickupLocationID:  132,
		DropoffLocationID: 237,
		DurationMin:       55,
		PickupHour:        17,
		PickupDay:         3,
		PickupMonth:       6,
	})

	if got.RateCode != RateJFK {
		t.Errorf("RateCode = %d, want %d", got.RateCode, RateJFK)
	}
	if got.AirportFee != 1.75 {
		t.Errorf("AirportFee = %f, want 1.75", got.AirportFee)
	}
	if got.AirportSurcharge != 0 {
		t.Errorf("AirportSurcharge = %f, want 0", got.AirportSurcharge)
	}
	if got.RushhourSurcharge != 2.50 {
		t.Errorf("RushhourSurcharge = %f, want 2.50", got.RushhourSurcharge)
	}
	if got.CongestionSurcharge != 2.50 {
		t.Errorf("CongestionSurcharge = %f, want 2.50", got.CongestionSurcharge)
	}
	if !got.IsPeaktime {
		t.Error("IsPeaktime = false, want true")
	}
	if got.IsLaGuardia {
		t.Error("IsLaGuardia = true, want false")
	}
}
