// Package units implements the unit conversion engine for the MCP server.
//
// The engine converts a numeric value between named units of the same
// physical quantity. Seven categories are supported, each with a designated
// base unit that every conversion routes through:
//
//   - Distance: meters
//   - Volume: liters
//   - Weight: kilograms
//   - Temperature: degrees Celsius
//   - Digital storage: bytes (powers of 1024)
//   - Pressure: pascals
//   - Speed: meters per second
//
// # Unit Names
//
// Units are looked up by name or alias ("kilometers" and "km" denote the same
// unit). Lookup is case-insensitive but otherwise exact: no fuzzy matching
// and no whitespace trimming. The catalog is static, built once at package
// init, and never mutated afterward.
//
// # Conversion Semantics
//
// Most units relate to their base by a constant factor. Temperature scales
// are affine (Fahrenheit and Kelvin carry an offset). The Beaufort wind scale
// is banded: converting to it quantizes the speed into one of thirteen force
// bands, so Beaufort conversions are intentionally lossy and do not round-trip.
//
// Values are never validated for physical plausibility: a negative mass or a
// temperature below absolute zero converts arithmetically like any other
// input. Results are full-precision float64 with no rounding; display
// formatting is the caller's concern.
//
// # Error Handling
//
// Convert fails with *UnknownUnitError when a name matches no catalog alias,
// and with *CategoryMismatchError when both units resolve but measure
// different quantities. Both carry enough context for callers to render
// detailed guidance.
//
// # Thread Safety
//
// Every function is a pure function over read-only catalog data and is safe
// for unbounded concurrent use.
package units
