// internal/domain/delivery/geo.go
package delivery

import "math"

const earthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair
type Coordinate struct {
	Lat float64
	Lng float64
}

// zipCoordinates maps ZIP codes inside the seeded service areas to
// coordinates. Address geocoding is the only geographic input the optimizer
// needs; anything finer-grained belongs to an external geocoding service.
var zipCoordinates = map[string]Coordinate{
	// Dallas metro
	"75201": {32.7876, -96.7994},
	"75204": {32.8021, -96.7894},
	"75206": {32.8312, -96.7697},
	"75214": {32.8286, -96.7485},
	"75230": {32.9024, -96.7891},
	// Fort Worth
	"76102": {32.7555, -97.3308},
	"76107": {32.7393, -97.3843},
	// Austin
	"78701": {30.2711, -97.7437},
	"78704": {30.2452, -97.7713},
	"78759": {30.4019, -97.7502},
	// Houston
	"77002": {29.7589, -95.3677},
	"77005": {29.7180, -95.4290},
	"77056": {29.7483, -95.4613},
}

// zipPrefixCoordinates covers metro areas by 3-digit prefix when the exact
// ZIP is not in the table.
var zipPrefixCoordinates = map[string]Coordinate{
	"752": {32.7876, -96.7994}, // Dallas
	"761": {32.7555, -97.3308}, // Fort Worth
	"787": {30.2711, -97.7437}, // Austin
	"770": {29.7589, -95.3677}, // Houston
}

// unknownZipCoordinate is a deterministic far-away point for ZIP codes
// outside every known service area, so they never match a warehouse radius.
var unknownZipCoordinate = Coordinate{0.0, -150.0}

// GeocodeZip resolves a ZIP code to a coordinate: exact match, then 3-digit
// prefix, then the far-away default.
func GeocodeZip(zipCode string) Coordinate {
	if coord, ok := zipCoordinates[zipCode]; ok {
		return coord
	}
	if len(zipCode) >= 3 {
		if coord, ok := zipPrefixCoordinates[zipCode[:3]]; ok {
			return coord
		}
	}
	return unknownZipCoordinate
}

// DistanceKm computes the haversine great-circle distance between two
// coordinates in kilometers.
func DistanceKm(a, b Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
