// Package server implements the MCP (Model Context Protocol) server for unit conversion.
//
// This package provides a JSON-RPC 2.0 server that exposes the unit
// conversion engine through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients, letting AI systems convert values
// between physical units with full-precision arithmetic.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server exposes a single tool:
//   - unit_conversion: Convert a value between named units of the same
//     physical quantity (distance, volume, weight, temperature, digital
//     storage, pressure, speed)
//
// The tool's input schema is inferred from the ConversionParams struct using
// github.com/google/jsonschema-go.
//
// # Error Handling
//
// Protocol-level problems are returned as JSON-RPC error responses:
//   - code -32602: invalid tools/call params envelope
//   - code -32601: unknown method
//   - code -32000: unknown tool name
//
// Conversion-level failures never become protocol errors. Missing or
// malformed arguments, unrecognized units, and cross-category conversions all
// produce a successful tool result whose text explains the problem and lists
// the valid units, so a language-model caller can correct its next request.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv, err := server.New(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
