package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Coordinates is a (latitude, longitude) pair. It is stored as a two element
// JSON array.
type Coordinates [2]float64

var ErrInvalidCoordinates = errors.New("entry: invalid coordinates")

func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{lat, lng}
}

func (c Coordinates) Lat() float64 { return c[0] }
func (c Coordinates) Lng() float64 { return c[1] }

// Valid reports whether both components are finite.
func (c Coordinates) Valid() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c *Coordinates) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinates, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: want 2 values, got %d", ErrInvalidCoordinates, len(pair))
	}
	*c = Coordinates{pair[0], pair[1]}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat(), c.Lng())
}
