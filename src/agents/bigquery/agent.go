// Package bigquery implements the data agent: dataset/table discovery,
// schema inspection, and bounded SQL execution against Google BigQuery.
package bigquery

import (
	"context"
	"fmt"
	"sync"

	bq "cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/models"
)

const instructions = `You are a BigQuery expert agent. Your role is to:
1. Help users query data from BigQuery datasets
2. Analyze query results and provide insights
3. Suggest optimizations for queries
4. List available datasets and tables
5. Provide schema information

Always ensure queries are safe and follow best practices.
Use standard SQL syntax for BigQuery.
Warn users about potentially expensive queries.`

// maxBytesBilled caps query cost at 10 GB.
const maxBytesBilled = 10 * 1024 * 1024 * 1024

const defaultMaxResults = 100

type bigqueryTools struct {
	project  string
	location string

	mu     sync.Mutex
	client *bq.Client
}

// New builds the BigQuery agent. The client is created lazily on first tool
// use so the service can start without cloud credentials; an auth failure
// surfaces as a tool-level error, not a crash.
func New(model models.Model, project, location string) (*agent.Agent, error) {
	b := &bigqueryTools{project: project, location: location}

	catalog := agent.NewCatalog()
	for _, reg := range []struct {
		spec    agent.ToolSpec
		handler agent.Handler
	}{
		{listDatasetsSpec, b.listDatasets},
		{listTablesSpec, b.listTables},
		{getTableSchemaSpec, b.getTableSchema},
		{executeQuerySpec, b.executeQuery},
	} {
		if err := catalog.Register(reg.spec, reg.handler); err != nil {
			return nil, err
		}
	}

	return agent.New(agent.Options{
		Name:         "BigQuery Agent",
		Description:  "Specialized agent for querying and analyzing data in Google BigQuery",
		Instructions: instructions,
		AgentType:    "BigQueryAgent",
		Model:        model,
		Catalog:      catalog,
	})
}

func (b *bigqueryTools) getClient(ctx context.Context) (*bq.Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.client != nil {
		return b.client, nil
	}
	client, err := bq.NewClient(ctx, b.project)
	if err != nil {
		return nil, fmt.Errorf("BigQuery authentication failed: %w. Please run: gcloud auth application-default login", err)
	}
	if b.location != "" {
		client.Location = b.location
	}
	b.client = client
	return client, nil
}

func (b *bigqueryTools) listDatasets(ctx context.Context, _ map[string]any) agent.Result {
	client, err := b.getClient(ctx)
	if err != nil {
		return agent.Errorf("%v", err)
	}

	var datasets []any
	it := client.Datasets(ctx)
	for {
		ds, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return agent.Errorf("list datasets: %v", err)
		}
		datasets = append(datasets, map[string]any{
			"dataset_id":      ds.DatasetID,
			"full_dataset_id": fmt.Sprintf("%s:%s", ds.ProjectID, ds.DatasetID),
		})
	}
	return agent.OK(map[string]any{"datasets": datasets})
}

func (b *bigqueryTools) listTables(ctx context.Context, params map[string]any) agent.Result {
	datasetID := agent.StringParam(params, "dataset_id", "")
	if datasetID == "" {
		return agent.Errorf("missing required parameter: dataset_id")
	}
	client, err := b.getClient(ctx)
	if err != nil {
		return agent.Errorf("%v", err)
	}

	var tables []any
	it := client.Dataset(datasetID).Tables(ctx)
	for {
		t, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return agent.Errorf("list tables: %v", err)
		}
		md, err := t.Metadata(ctx)
		if err != nil {
			return agent.Errorf("table metadata: %v", err)
		}
		tables = append(tables, map[string]any{
			"table_id":   t.TableID,
			"table_type": string(md.Type),
			"num_rows":   md.NumRows,
		})
	}
	return agent.OK(map[string]any{
		"dataset_id": datasetID,
		"tables":     tables,
	})
}

func (b *bigqueryTools) getTableSchema(ctx context.Context, params map[string]any) agent.Result {
	datasetID := agent.StringParam(params, "dataset_id", "")
	tableID := agent.StringParam(params, "table_id", "")
	if datasetID == "" || tableID == "" {
		return agent.Errorf("missing required parameters: dataset_id, table_id")
	}
	client, err := b.getClient(ctx)
	if err != nil {
		return agent.Errorf("%v", err)
	}

	md, err := client.Dataset(datasetID).Table(tableID).Metadata(ctx)
	if err != nil {
		return agent.Errorf("table metadata: %v", err)
	}

	schema := make([]any, 0, len(md.Schema))
	for _, f := range md.Schema {
		mode := "NULLABLE"
		if f.Repeated {
			mode = "REPEATED"
		} else if f.Required {
			mode = "REQUIRED"
		}
		schema = append(schema, map[string]any{
			"name":        f.Name,
			"type":        string(f.Type),
			"mode":        mode,
			"description": f.Description,
		})
	}

	return agent.OK(map[string]any{
		"dataset_id": datasetID,
		"table_id":   tableID,
		"schema":     schema,
		"num_rows":   md.NumRows,
		"size_bytes": md.NumBytes,
	})
}

func (b *bigqueryTools) executeQuery(ctx context.Context, params map[string]any) agent.Result {
	sql := agent.StringParam(params, "query", "")
	if sql == "" {
		return agent.Errorf("missing required parameter: query")
	}
	maxResults := agent.IntParam(params, "max_results", defaultMaxResults)

	client, err := b.getClient(ctx)
	if err != nil {
		return agent.Errorf("%v", err)
	}

	q := client.Query(sql)
	q.MaxBytesBilled = maxBytesBilled

	job, err := q.Run(ctx)
	if err != nil {
		return agent.Errorf("query: %v", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return agent.Errorf("query: %v", err)
	}

	var rows []any
	for len(rows) < maxResults {
		var row map[string]bq.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return agent.Errorf("read results: %v", err)
		}
		converted := make(map[string]any, len(row))
		for k, v := range row {
			converted[k] = v
		}
		rows = append(rows, converted)
	}

	payload := map[string]any{
		"query":         sql,
		"total_rows":    it.TotalRows,
		"rows_returned": len(rows),
		"rows":          rows,
	}
	if status, err := job.Status(ctx); err == nil {
		if stats, ok := status.Statistics.Details.(*bq.QueryStatistics); ok {
			payload["bytes_processed"] = stats.TotalBytesProcessed
			payload["bytes_billed"] = stats.TotalBytesBilled
		}
	}
	return agent.OK(payload)
}
