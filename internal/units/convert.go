package units

import "math"

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func MphToKmh(mph float64) float64 { return mph * MphToKmhFactor }

func KmhToMph(kmh float64) float64 { return kmh * KmhToMphFactor }

func InHgToMb(inHg float64) float64 { return inHg * InHgToMbFactor }

func MbToInHg(mb float64) float64 { return mb * MbToInHgFactor }

func InToMm(in float64) float64 { return in * InToMmFactor }

func MmToIn(mm float64) float64 { return mm * MmToInFactor }

// Round rounds v half away from zero at the given number of decimals.
// Negative zero is normalised so it never prints as "-0.0".
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

func convert(v *float64, fn func(float64) float64) *float64 {
	if v == nil {
		return nil
	}
	out := fn(*v)
	return &out
}

// Temperature converts a Fahrenheit reading into sys.
func Temperature(f *float64, sys System) *float64 {
	if sys == Imperial {
		return convert(f, identity)
	}
	return convert(f, FahrenheitToCelsius)
}

// WindSpeed converts an mph reading into sys.
func WindSpeed(mph *float64, sys System) *float64 {
	if sys == Imperial {
		return convert(mph, identity)
	}
	return convert(mph, MphToKmh)
}

// Pressure converts an inHg reading into sys.
func Pressure(inHg *float64, sys System) *float64 {
	if sys == Imperial {
		return convert(inHg, identity)
	}
	return convert(inHg, InHgToMb)
}

// Rainfall picks the amount matching sys from the station's mm/in pair. When
// only the other unit is present it is converted arithmetically.
func Rainfall(mm, in *float64, sys System) *float64 {
	if sys == Imperial {
		if in != nil {
			return convert(in, identity)
		}
		return convert(mm, MmToIn)
	}
	if mm != nil {
		return convert(mm, identity)
	}
	return convert(in, InToMm)
}

// RainfallExact is Rainfall without the cross-unit fallback.
func RainfallExact(mm, in *float64, sys System) *float64 {
	if sys == Imperial {
		return convert(in, identity)
	}
	return convert(mm, identity)
}

func identity(v float64) float64 { return v }
