package models

import (
	"math"
	"testing"
)

func TestLocationValid(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"times square", Location{Lat: 40.7580, Lon: -73.9851}, true},
		{"null island", Location{Lat: 0, Lon: 0}, true},
		{"north pole", Location{Lat: 90, Lon: 0}, true},
		{"date line", Location{Lat: 0, Lon: -180}, true},
		{"lat too high", Location{Lat: 90.001, Lon: 0}, false},
		{"lat too low", Location{Lat: -90.001, Lon: 0}, false},
		{"lon too high", Location{Lat: 0, Lon: 180.001}, false},
		{"lon too low", Location{Lat: 0, Lon: -180.001}, false},
		{"nan lat", Location{Lat: math.NaN(), Lon: 0}, false},
		{"nan lon", Location{Lat: 0, Lon: math.NaN()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Valid(); got != tt.want {
				t.Errorf("Valid(%v) = %v, want %v", tt.loc, got, tt.want)
			}
		})
	}
}

func TestDistanceTo(t *testing.T) {
	timesSquare := Location{Lat: 40.7580, Lon: -73.9851}
	madisonSquarePark := Location{Lat: 40.7414, Lon: -73.9881}

	tests := []struct {
		name      string
		from, to  Location
		want      float64
		tolerance float64
	}{
		{"same point", timesSquare, timesSquare, 0, 0.001},
		// within 1% of the surveyed great-circle distance
		{"times square to madison square park", timesSquare, madisonSquarePark, 1863, 19},
		// one degree of latitude on the reference sphere
		{"degree of latitude", Location{Lat: 0, Lon: 0}, Location{Lat: 1, Lon: 0}, 111194.9, 1},
		// one degree of longitude at the equator is the same arc
		{"degree of longitude at equator", Location{Lat: 0, Lon: 0}, Location{Lat: 0, Lon: 1}, 111194.9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.DistanceTo(tt.to)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceTo() = %f, want %f ± %f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceToSymmetric(t *testing.T) {
	a := Location{Lat: 40.7580, Lon: -73.9851}
	b := Location{Lat: 40.7061, Lon: -73.9969}

	if ab, ba := a.DistanceTo(b), b.DistanceTo(a); math.Abs(ab-ba) > 1e-6 {
		t.Errorf("DistanceTo not symmetric: %f vs %f", ab, ba)
	}
}

func TestLocationScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    Location
		wantErr bool
	}{
		{"point string", "POINT(-73.9851 40.758)", Location{Lat: 40.758, Lon: -73.9851}, false},
		{"point bytes", []byte("POINT(-73.9969 40.7061)"), Location{Lat: 40.7061, Lon: -73.9969}, false},
		{"nil value", nil, Location{}, false},
		{"unsupported type", 42, Location{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loc Location
			err := loc.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && loc != tt.want {
				t.Errorf("Scan(%v) = %+v, want %+v", tt.value, loc, tt.want)
			}
		})
	}
}
