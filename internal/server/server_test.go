package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer creates a server with logging discarded.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	s, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := newTestServer(t)
	require.NotNil(t, s)
	assert.NotEmpty(t, s.tools, "New() did not build tool definitions")
	assert.NotNil(t, s.logger)
}

func TestNew_NilLogger(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.NotNil(t, s.logger, "nil logger should fall back to the default")
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))

			assert.Equal(t, tt.wantID, req.ID)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, "2.0", req.JSONRPC)
		})
	}
}

func TestMCPRequest_WithParams(t *testing.T) {
	jsonStr := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"unit_conversion","arguments":{"value":10,"from_unit":"meters","to_unit":"feet"}}}`

	var req MCPRequest
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &req))
	require.NotNil(t, req.Params)

	var params map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "unit_conversion", params["name"])
}

func TestMCPResponse_Marshal(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Result:  map[string]interface{}{"status": "ok"},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded MCPResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded.JSONRPC)
}

func TestMCPResponse_WithError(t *testing.T) {
	resp := MCPResponse{
		JSONRPC: "2.0",
		ID:      1,
		Error: &MCPError{
			Code:    -32601,
			Message: "Method not found",
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded MCPResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Error)
	assert.Equal(t, -32601, decoded.Error.Code)
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	}

	resp := s.handleRequest(req)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Result should be a map")
	assert.Equal(t, "2024-11-05", result["protocolVersion"])

	info, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok, "serverInfo should be a map")
	assert.Equal(t, "unit-converter-mcp", info["name"])
}

func TestHandleRequest_Ping(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	}

	resp := s.handleRequest(req)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
}

func TestHandleRequest_InitializedNotification(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	// Notifications get no response at all.
	assert.Nil(t, s.handleRequest(req))
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      7,
		Method:  "resources/list",
	}

	resp := s.handleRequest(req)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "resources/list")
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	}

	resp := s.handleRequest(req)
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	tools, ok := result["tools"].([]Tool)
	require.True(t, ok)
	require.Len(t, tools, 1)
	assert.Equal(t, "unit_conversion", tools[0].Name)
}
