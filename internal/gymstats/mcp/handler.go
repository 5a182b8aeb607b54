package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput is the input of the per-user tools.
type UserInput struct {
	UserID string `json:"user_id" jsonschema:"ID of the user whose training history is analysed"`
}

// SchemaInput is empty, the schema tool takes no arguments.
type SchemaInput struct{}

type insightsOutput struct {
	Insights any `json:"insights"`
}

// GetSchemaTool returns the MCP tool handler for get_training_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, SchemaInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SchemaInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// GetInsightsTool returns the MCP tool handler for get_training_insights.
func (h *Handler) GetInsightsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID := strings.TrimSpace(in.UserID)
		if userID == "" {
			return errorResult("Missing user_id"), nil, nil
		}

		list, err := h.service.GetInsights(ctx, userID)
		if err != nil {
			return errorResult("Error computing insights: " + err.Error()), nil, nil
		}
		return jsonResult(insightsOutput{Insights: list})
	}
}

// GetVolumeTool returns the MCP tool handler for get_training_volume.
func (h *Handler) GetVolumeTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID := strings.TrimSpace(in.UserID)
		if userID == "" {
			return errorResult("Missing user_id"), nil, nil
		}

		report, err := h.service.GetVolume(ctx, userID)
		if err != nil {
			return errorResult("Error computing training volume: " + err.Error()), nil, nil
		}
		return jsonResult(report)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return textResult(string(raw)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
