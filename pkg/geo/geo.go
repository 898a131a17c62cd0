package geo

import "math"

// EarthRadiusKm is the mean earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MidpointResult describes the meeting point between a buyer and a seller
type MidpointResult struct {
	Midpoint           Coordinates `json:"midpoint"`
	DistanceToBuyerKm  float64     `json:"distance_to_buyer_km"`
	DistanceToSellerKm float64     `json:"distance_to_seller_km"`
	TotalDistanceKm    float64     `json:"total_distance_km"`
}

// HaversineDistance returns the great-circle distance between two points in
// kilometers.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CalculateMidpoint returns the coordinate average of the two points plus the
// haversine distances from each party to it.
func CalculateMidpoint(buyerLat, buyerLon, sellerLat, sellerLon float64) MidpointResult {
	midLat := (buyerLat + sellerLat) / 2
	midLon := (buyerLon + sellerLon) / 2

	return MidpointResult{
		Midpoint: Coordinates{
			Latitude:  midLat,
			Longitude: midLon,
		},
		DistanceToBuyerKm:  HaversineDistance(buyerLat, buyerLon, midLat, midLon),
		DistanceToSellerKm: HaversineDistance(sellerLat, sellerLon, midLat, midLon),
		TotalDistanceKm:    HaversineDistance(buyerLat, buyerLon, sellerLat, sellerLon),
	}
}
