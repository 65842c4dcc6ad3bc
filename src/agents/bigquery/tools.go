package bigquery

import "github.com/citymesh/a2a-agents/src/agent"

var listDatasetsSpec = agent.ToolSpec{
	Name:        "list_datasets",
	Description: "List all available BigQuery datasets in the project",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}

var listTablesSpec = agent.ToolSpec{
	Name:        "list_tables",
	Description: "List all tables in a specific dataset",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dataset_id": map[string]any{
				"type":        "string",
				"description": "The dataset ID to list tables from",
			},
		},
		"required": []string{"dataset_id"},
	},
}

var getTableSchemaSpec = agent.ToolSpec{
	Name:        "get_table_schema",
	Description: "Get the schema information for a specific table",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dataset_id": map[string]any{
				"type":        "string",
				"description": "The dataset ID",
			},
			"table_id": map[string]any{
				"type":        "string",
				"description": "The table ID",
			},
		},
		"required": []string{"dataset_id", "table_id"},
	},
}

var executeQuerySpec = agent.ToolSpec{
	Name:        "execute_query",
	Description: "Execute a SQL query on BigQuery",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The SQL query to execute",
			},
			"max_results": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results to return (default: 100)",
				"default":     100,
			},
		},
		"required": []string{"query"},
	},
}
