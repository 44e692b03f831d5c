package units

import "fmt"

// UnknownUnitError reports a unit name that matches no catalog entry or
// alias.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unsupported unit: %s", e.Name)
}

// CategoryMismatchError reports an attempt to convert between units of
// different physical quantities.
type CategoryMismatchError struct {
	FromUnit     string
	ToUnit       string
	FromCategory Category
	ToCategory   Category
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("cannot convert from %s (%s) to %s (%s)",
		e.FromUnit, e.FromCategory, e.ToUnit, e.ToCategory)
}

// Result is the outcome of a successful conversion.
type Result struct {
	// Value is the converted value in the target unit, full precision.
	Value float64

	// Category is the physical quantity both units belong to.
	Category Category
}

// Convert converts value from one named unit to another by routing through
// the category base unit. Unit names are case-insensitive and may be aliases
// ("km", "lbs", "m/s").
//
// The value itself is never validated: negative masses and temperatures below
// absolute zero convert arithmetically like any other input.
func Convert(value float64, fromUnit, toUnit string) (Result, error) {
	from, err := Resolve(fromUnit)
	if err != nil {
		return Result{}, err
	}
	to, err := Resolve(toUnit)
	if err != nil {
		return Result{}, err
	}
	if from.Category != to.Category {
		return Result{}, &CategoryMismatchError{
			FromUnit:     fromUnit,
			ToUnit:       toUnit,
			FromCategory: from.Category,
			ToCategory:   to.Category,
		}
	}
	return Result{
		Value:    to.FromBase(from.ToBase(value)),
		Category: from.Category,
	}, nil
}

// beaufortToMPS maps a Beaufort force number to a representative wind speed
// in meters per second. Fractional forces truncate to the whole force below;
// anything outside the 0-12 scale caps at hurricane force.
func beaufortToMPS(force float64) float64 {
	switch int(force) {
	case 0:
		return 0.0
	case 1:
		return 1.5
	case 2:
		return 3.0
	case 3:
		return 5.0
	case 4:
		return 7.5
	case 5:
		return 10.0
	case 6:
		return 12.5
	case 7:
		return 15.5
	case 8:
		return 18.5
	case 9:
		return 22.0
	case 10:
		return 26.0
	case 11:
		return 30.0
	case 12:
		return 35.0
	default:
		return 35.0
	}
}

// mpsToBeaufort maps a wind speed in meters per second to its Beaufort force
// band. The scale is quantized, so this is not a true inverse of
// beaufortToMPS.
func mpsToBeaufort(mps float64) float64 {
	switch {
	case mps < 0.5:
		return 0
	case mps < 2.0:
		return 1
	case mps < 4.0:
		return 2
	case mps < 6.0:
		return 3
	case mps < 9.0:
		return 4
	case mps < 11.0:
		return 5
	case mps < 14.0:
		return 6
	case mps < 17.0:
		return 7
	case mps < 21.0:
		return 8
	case mps < 24.0:
		return 9
	case mps < 28.0:
		return 10
	case mps < 33.0:
		return 11
	default:
		return 12
	}
}
