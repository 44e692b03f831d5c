package units

import "strings"

// Category identifies the physical quantity a unit measures. Units are only
// convertible within their own category.
type Category int

const (
	Distance Category = iota
	Volume
	Weight
	Temperature
	Digital
	Pressure
	Speed
)

// Categories lists every supported category in display order.
var Categories = []Category{Distance, Volume, Weight, Temperature, Digital, Pressure, Speed}

// String returns the lowercase category name used in tool responses.
func (c Category) String() string {
	switch c {
	case Distance:
		return "distance"
	case Volume:
		return "volume"
	case Weight:
		return "weight"
	case Temperature:
		return "temperature"
	case Digital:
		return "digital"
	case Pressure:
		return "pressure"
	case Speed:
		return "speed"
	default:
		return "unknown"
	}
}

// Units returns the canonical names of every unit in the category, in catalog
// order.
func (c Category) Units() []string {
	return append([]string(nil), unitsByCategory[c]...)
}

// Unit is a single convertible unit together with its relation to the
// category base unit.
type Unit struct {
	// Name is the canonical unit name (e.g. "meters" for the "m" alias).
	Name string

	// Category is the physical quantity this unit measures.
	Category Category

	toBase   func(float64) float64
	fromBase func(float64) float64
}

// ToBase converts a value in this unit to the category base unit.
func (u *Unit) ToBase(v float64) float64 { return u.toBase(v) }

// FromBase converts a value in the category base unit to this unit.
func (u *Unit) FromBase(v float64) float64 { return u.fromBase(v) }

type unitDef struct {
	name     string
	aliases  []string
	category Category
	toBase   func(float64) float64
	fromBase func(float64) float64
}

// scaled defines a unit that is a constant multiple of its base unit.
func scaled(name string, cat Category, factor float64, aliases ...string) unitDef {
	return unitDef{
		name:     name,
		aliases:  aliases,
		category: cat,
		toBase:   func(v float64) float64 { return v * factor },
		fromBase: func(v float64) float64 { return v / factor },
	}
}

// divided defines a unit that is a constant fraction of its base unit.
func divided(name string, cat Category, divisor float64, aliases ...string) unitDef {
	return unitDef{
		name:     name,
		aliases:  aliases,
		category: cat,
		toBase:   func(v float64) float64 { return v / divisor },
		fromBase: func(v float64) float64 { return v * divisor },
	}
}

// nonlinear defines a unit with explicit conversion functions (affine
// temperature scales, the banded Beaufort scale).
func nonlinear(name string, cat Category, to, from func(float64) float64, aliases ...string) unitDef {
	return unitDef{
		name:     name,
		aliases:  aliases,
		category: cat,
		toBase:   to,
		fromBase: from,
	}
}

// defs is the complete unit catalog. The first unit of each category is its
// base unit (factor 1).
var defs = []unitDef{
	// Distance (base: meters)
	scaled("meters", Distance, 1, "m"),
	scaled("kilometers", Distance, 1000, "km"),
	scaled("miles", Distance, 1609.344, "mi"),
	scaled("feet", Distance, 0.3048, "ft"),
	scaled("inches", Distance, 0.0254, "in"),
	scaled("yards", Distance, 0.9144, "yd"),
	scaled("nautical_miles", Distance, 1852, "nmi"),

	// Volume (base: liters)
	scaled("liters", Volume, 1, "l"),
	divided("milliliters", Volume, 1000, "ml"),
	scaled("gallons", Volume, 3.78541, "gal"),
	scaled("quarts", Volume, 0.946353, "qt"),
	scaled("pints", Volume, 0.473176, "pt"),
	scaled("cups", Volume, 0.236588),
	scaled("fluid_ounces", Volume, 0.0295735, "fl_oz"),

	// Weight (base: kilograms)
	scaled("kilograms", Weight, 1, "kg"),
	divided("grams", Weight, 1000, "g"),
	scaled("pounds", Weight, 0.453592, "lb", "lbs"),
	scaled("ounces", Weight, 0.0283495, "oz"),
	scaled("stones", Weight, 6.35029, "st"),

	// Temperature (base: celsius)
	scaled("celsius", Temperature, 1, "c"),
	nonlinear("fahrenheit", Temperature,
		func(v float64) float64 { return (v - 32) * 5 / 9 },
		func(v float64) float64 { return v*9/5 + 32 },
		"f"),
	nonlinear("kelvin", Temperature,
		func(v float64) float64 { return v - 273.15 },
		func(v float64) float64 { return v + 273.15 },
		"k"),

	// Digital (base: bytes, powers of 1024)
	scaled("bytes", Digital, 1, "b"),
	scaled("kilobytes", Digital, 1024, "kb"),
	scaled("megabytes", Digital, 1024*1024, "mb"),
	scaled("gigabytes", Digital, 1024*1024*1024, "gb"),
	scaled("terabytes", Digital, 1024*1024*1024*1024, "tb"),
	divided("bits", Digital, 8),
	scaled("kilobits", Digital, 1024.0/8, "kbit"),
	scaled("megabits", Digital, 1024.0*1024/8, "mbit"),
	scaled("gigabits", Digital, 1024.0*1024*1024/8, "gbit"),

	// Pressure (base: pascal)
	scaled("pascal", Pressure, 1, "pa"),
	scaled("kilopascal", Pressure, 1000, "kpa"),
	scaled("megapascal", Pressure, 1e6, "mpa"),
	scaled("bar", Pressure, 1e5),
	scaled("psi", Pressure, 6894.76),
	scaled("atmosphere", Pressure, 101325, "atm"),
	scaled("torr", Pressure, 133.322),
	scaled("mmhg", Pressure, 133.322),

	// Speed (base: meters per second)
	scaled("meters_per_second", Speed, 1, "mps", "m/s"),
	divided("kilometers_per_hour", Speed, 3.6, "kph", "km/h"),
	scaled("miles_per_hour", Speed, 0.44704, "mph"),
	scaled("knots", Speed, 0.514444, "kt"),
	scaled("feet_per_second", Speed, 0.3048, "fps", "ft/s"),
	nonlinear("beaufort", Speed, beaufortToMPS, mpsToBeaufort),
}

var (
	catalog         = make(map[string]*Unit)
	unitsByCategory = make(map[Category][]string)
)

func init() {
	for _, d := range defs {
		u := &Unit{Name: d.name, Category: d.category, toBase: d.toBase, fromBase: d.fromBase}
		for _, key := range append([]string{d.name}, d.aliases...) {
			key = strings.ToLower(key)
			if _, dup := catalog[key]; dup {
				panic("units: duplicate alias " + key)
			}
			catalog[key] = u
		}
		unitsByCategory[d.category] = append(unitsByCategory[d.category], d.name)
	}
}

// Resolve looks up a unit by canonical name or alias. Lookup is
// case-insensitive but otherwise exact: no fuzzy matching, no whitespace
// trimming.
func Resolve(name string) (*Unit, error) {
	u, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownUnitError{Name: name}
	}
	return u, nil
}
