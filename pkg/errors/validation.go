package errors

import "math"

// ForbiddenBand is the half-width, in degrees, of the equatorial band of
// latitudes for which no working astrolabe can be constructed. The open
// interval (-ForbiddenBand, +ForbiddenBand) is rejected; the endpoints are
// accepted.
const ForbiddenBand = 15.0

// ValidateLatitude checks that an observing latitude can drive a generation
// run. It must be called before any projection work is attempted.
//
// Validation rules:
//   - Must be a finite number
//   - Must lie within [-90, +90] degrees
//   - Must lie outside the open equatorial band (-15, +15) degrees
func ValidateLatitude(latitude float64) error {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) {
		return New(ErrCodeLatitudeOutOfRange, "latitude must be a finite number of degrees")
	}

	if latitude < -90 || latitude > 90 {
		return New(ErrCodeLatitudeOutOfRange, "latitude %.2f outside [-90, 90]", latitude)
	}

	if math.Abs(latitude) < ForbiddenBand {
		return New(ErrCodeLatitudeOutOfRange,
			"latitude %.2f inside forbidden equatorial band (-%g, %g)", latitude, ForbiddenBand, ForbiddenBand)
	}

	return nil
}

// ValidateDeclination checks that a declination or altitude lies in the
// closed domain [-90, +90] degrees.
func ValidateDeclination(dec float64) error {
	if math.IsNaN(dec) || dec < -90 || dec > 90 {
		return New(ErrCodeDegenerateProjection, "declination %.2f outside [-90, 90]", dec)
	}
	return nil
}
