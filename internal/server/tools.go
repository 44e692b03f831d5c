package server

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// ConversionParams defines the input schema for the unit_conversion tool.
// The schema is inferred from this struct; the field tags carry the
// per-parameter descriptions shown to the calling agent.
type ConversionParams struct {
	Value    float64 `json:"value" jsonschema:"The value to convert"`
	FromUnit string  `json:"from_unit" jsonschema:"The unit to convert from (e.g., meters, kilometers, miles, feet, inches, yards, nautical_miles, liters, gallons, kilograms, pounds, celsius, fahrenheit, bytes, bits, pascal, psi, mph, kph, knots, beaufort)"`
	ToUnit   string  `json:"to_unit" jsonschema:"The target unit to convert to (e.g., meters, kilometers, miles, feet, inches, yards, nautical_miles, liters, gallons, kilograms, pounds, celsius, fahrenheit, bytes, bits, pascal, psi, mph, kph, knots, beaufort)"`
}

const unitConversionDescription = "Convert between different units including " +
	"distance (meters, kilometers, miles, feet, inches, yards, nautical_miles), " +
	"volume (liters, milliliters, gallons, quarts, pints, cups, fluid ounces), " +
	"weight (kilograms, grams, pounds, ounces, stones), " +
	"temperature (celsius, fahrenheit, kelvin), " +
	"digital storage (bytes, kilobytes, megabytes, gigabytes, terabytes, bits, kilobits, megabits, gigabits), " +
	"pressure (pascal, kilopascal, megapascal, bar, psi, atmosphere, torr, mmhg), " +
	"and speed (meters_per_second, kilometers_per_hour, miles_per_hour, knots, feet_per_second, beaufort)"

// GetToolDefinitions returns all available tools
func GetToolDefinitions() ([]Tool, error) {
	inputSchema, err := jsonschema.For[ConversionParams](nil)
	if err != nil {
		return nil, err
	}

	return []Tool{
		{
			Name:        "unit_conversion",
			Description: unitConversionDescription,
			InputSchema: inputSchema,
		},
	}, nil
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.tools,
		},
	}
}
