package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gyminsights/internal/gymstats/insights"
)

// insightsEngine is the part of insights.Engine the tools need.
type insightsEngine interface {
	ComputeInsights(ctx context.Context, userID string) ([]insights.Insight, error)
	TrainingVolume(ctx context.Context, userID string) (*insights.VolumeReport, error)
}

// contextService provides the data behind the tools. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetInsights(ctx context.Context, userID string) ([]insights.Insight, error)
	GetVolume(ctx context.Context, userID string) (*insights.VolumeReport, error)
}

// ContextService holds dependencies and implements the tools' business logic.
type ContextService struct {
	schema SchemaRepo
	engine insightsEngine
}

func NewContextService(schemaRepo SchemaRepo, engine insightsEngine) *ContextService {
	return &ContextService{
		schema: schemaRepo,
		engine: engine,
	}
}

// GetSchema returns the DB schema (table names, columns, types) of the
// tables the insights are computed from, formatted as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrainingColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatTrainingSchema(cols), nil
}

func (s *ContextService) GetInsights(ctx context.Context, userID string) ([]insights.Insight, error) {
	return s.engine.ComputeInsights(ctx, userID)
}

func (s *ContextService) GetVolume(ctx context.Context, userID string) (*insights.VolumeReport, error) {
	return s.engine.TrainingVolume(ctx, userID)
}

func formatTrainingSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Training DB Schema\n\nNo training tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Training DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(tableOrder, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
