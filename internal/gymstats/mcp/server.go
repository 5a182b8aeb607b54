package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with the training insight tools.
func NewServer(schemaRepo SchemaRepo, engine insightsEngine) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, engine))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymstats-insights",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_insights",
		Description: "Returns the coaching insights for a user, computed from the last 12 weeks of training: personal records, load increase suggestions, recovery warnings (volume spike, training streak), low plan adherence and the weekly volume summary. Arg: user_id.",
	}, h.GetInsightsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_volume",
		Description: "Returns the weekly training volume (kg, keyed by the Monday of the week), the number of training days and the longest streak of consecutive training days of a user over the last 12 weeks. Arg: user_id.",
	}, h.GetVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_schema",
		Description: "Returns the DB schema of the tables the insights are computed from (exercise, workout_session, workout_set, workout_target, training_plan, plan_adherence): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	return s
}
