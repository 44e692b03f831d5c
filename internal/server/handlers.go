package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/unit-converter-mcp/internal/units"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "unit_conversion").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<result or guidance>"}]
//	}
//
// Only protocol-level problems (bad params envelope, unknown tool) become
// JSON-RPC errors. Conversion failures are delivered as tool output text so
// that a language-model caller can read the guidance and self-correct.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	text, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (string, error) {
	switch name {
	case "unit_conversion":
		return s.handleUnitConversion(args), nil
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Unit Conversion Handler ===

// convertArgs mirrors ConversionParams with pointer fields so that missing
// required fields are distinguishable from zero values.
type convertArgs struct {
	Value    *float64 `json:"value"`
	FromUnit *string  `json:"from_unit"`
	ToUnit   *string  `json:"to_unit"`
}

type conversionResponse struct {
	Original  string  `json:"original"`
	Converted string  `json:"converted"`
	Value     float64 `json:"value"`
	UnitType  string  `json:"unit_type"`
}

// handleUnitConversion validates the arguments, runs the conversion engine,
// and formats the outcome. Every failure mode returns explanatory text
// instead of an error.
func (s *Server) handleUnitConversion(args json.RawMessage) string {
	if len(args) == 0 || string(args) == "null" {
		return missingArgumentsHelp
	}

	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return parseErrorHelp(err.Error())
	}
	switch {
	case a.Value == nil:
		return parseErrorHelp(`missing required field "value"`)
	case a.FromUnit == nil:
		return parseErrorHelp(`missing required field "from_unit"`)
	case a.ToUnit == nil:
		return parseErrorHelp(`missing required field "to_unit"`)
	}

	result, err := units.Convert(*a.Value, *a.FromUnit, *a.ToUnit)
	if err != nil {
		return conversionFailureText(err, *a.FromUnit, *a.ToUnit)
	}

	return mustMarshalJSON(conversionResponse{
		Original:  fmt.Sprintf("%v %s", *a.Value, *a.FromUnit),
		Converted: fmt.Sprintf("%v %s", result.Value, *a.ToUnit),
		Value:     result.Value,
		UnitType:  result.Category.String(),
	})
}

// conversionFailureText renders an engine error as guidance for the caller.
// An unresolved source unit gets the full catalog listing; a bad target unit
// (unknown or wrong category) gets the valid units of the source's category.
func conversionFailureText(err error, fromUnit, toUnit string) string {
	var mismatch *units.CategoryMismatchError
	if errors.As(err, &mismatch) {
		return badTargetUnitText(fromUnit, toUnit, mismatch.FromCategory)
	}

	var unknown *units.UnknownUnitError
	if errors.As(err, &unknown) && unknown.Name != fromUnit {
		// The source resolved; only the target name is bad.
		from, rerr := units.Resolve(fromUnit)
		if rerr == nil {
			return badTargetUnitText(fromUnit, toUnit, from.Category)
		}
	}

	return unknownSourceUnitText(fromUnit)
}

const missingArgumentsHelp = "Error: Missing arguments for unit conversion.\n\n" +
	"To use this tool, please provide:\n" +
	"- value: The numeric value to convert (e.g., 10)\n" +
	"- from_unit: The source unit (e.g., \"meters\", \"pounds\", \"celsius\")\n" +
	"- to_unit: The target unit (e.g., \"feet\", \"kilograms\", \"fahrenheit\")\n\n" +
	"Example: {\"value\": 10, \"from_unit\": \"meters\", \"to_unit\": \"feet\"}"

func parseErrorHelp(detail string) string {
	return fmt.Sprintf("Error: Invalid arguments for unit conversion.\n\n"+
		"Parsing failed with: %s\n\n"+
		"Required parameters:\n"+
		"- value: A number (e.g., 10.5)\n"+
		"- from_unit: A string specifying the source unit\n"+
		"- to_unit: A string specifying the target unit\n\n"+
		"Please ensure your JSON is properly formatted and includes all required fields.",
		detail)
}

func unknownSourceUnitText(fromUnit string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: Unrecognized source unit %q.\n\nSupported units by category:\n\n", fromUnit)
	for _, c := range units.Categories {
		fmt.Fprintf(&b, "%s: %s\n", capitalize(c.String()), strings.Join(c.Units(), ", "))
	}
	b.WriteString("\nNote: Units are case-insensitive. Try using the full unit name or common abbreviations.")
	return b.String()
}

func badTargetUnitText(fromUnit, toUnit string, cat units.Category) string {
	return fmt.Sprintf("Error: Cannot convert from %s (%s) to %q.\n\n"+
		"The target unit %q is either:\n"+
		"1. Not supported for %s conversions\n"+
		"2. From a different unit category\n"+
		"3. Misspelled\n\n"+
		"Supported %s units: %s\n\n"+
		"Note: You can only convert between units of the same type (e.g., distance to distance, weight to weight).",
		fromUnit, cat, toUnit, toUnit, cat, cat, strings.Join(cat.Units(), ", "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
