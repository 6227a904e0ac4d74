package domain

// Coordinate is a WGS84 latitude/longitude pair, used both for stored points of
// interest and for the live device position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Currency is one of the two display currencies of the trip.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyNOK Currency = "NOK"
)

// Valid reports whether the currency is one of the supported pair.
func (c Currency) Valid() bool {
	return c == CurrencyEUR || c == CurrencyNOK
}
