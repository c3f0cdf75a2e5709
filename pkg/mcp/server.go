// Package mcp exposes the extraction pipeline and its reports to MCP
// clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/duynguyendang/docdates/internal/manager"
	"github.com/duynguyendang/docdates/pkg/report"
)

// ExtractFunc runs the full pipeline over a directory and returns the
// completed report. The CLI wires the configured pipeline in here.
type ExtractFunc func(ctx context.Context, docsDir string, continueOnError bool) (*report.Report, error)

// MCPServer wraps the report manager and pipeline for MCP access.
type MCPServer struct {
	manager *manager.ReportManager
	extract ExtractFunc
}

// Run starts the MCP server on Stdio.
func Run(ctx context.Context, mgr *manager.ReportManager, extract ExtractFunc) error {
	s := server.NewMCPServer(
		"docdates",
		"0.1.0",
		server.WithLogging(),
	)

	ms := &MCPServer{manager: mgr, extract: extract}

	s.AddTool(
		mcp.NewTool(
			"extract_directory",
			mcp.WithDescription("Extract created date, posted date and summary from every document in a directory."),
			mcp.WithString("dir", mcp.Required(), mcp.Description("Directory holding the input documents")),
			mcp.WithBoolean("continue_on_error", mcp.Description("Record EXTRACTION_FAILED for failing documents instead of aborting")),
		),
		ms.handleExtractDirectory,
	)

	s.AddTool(
		mcp.NewTool(
			"get_report",
			mcp.WithDescription("Return an extraction report as JSON. Defaults to the latest run."),
			mcp.WithString("run_id", mcp.Description("Specific run ID to fetch")),
		),
		ms.handleGetReport,
	)

	s.AddTool(
		mcp.NewTool(
			"find_record",
			mcp.WithDescription("Find the extraction record for a document by (approximate) filename."),
			mcp.WithString("file", mcp.Required(), mcp.Description("The document filename to look up")),
		),
		ms.handleFindRecord,
	)

	return server.ServeStdio(s)
}

// --- Tool Handlers ---

func (ms *MCPServer) handleExtractDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	dir, ok := args["dir"].(string)
	if !ok || dir == "" {
		return mcp.NewToolResultError("dir argument required"), nil
	}
	continueOnError, _ := args["continue_on_error"].(bool)

	rep, err := ms.extract(ctx, dir, continueOnError)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}
	ms.manager.Add(rep)

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal report"), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (ms *MCPServer) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var rep *report.Report
	var ok bool
	if runID, _ := args["run_id"].(string); runID != "" {
		rep, ok = ms.manager.Get(runID)
	} else {
		rep, ok = ms.manager.Latest()
	}
	if !ok {
		return mcp.NewToolResultError("no extraction run available"), nil
	}

	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal report"), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (ms *MCPServer) handleFindRecord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	file, ok := args["file"].(string)
	if !ok || file == "" {
		return mcp.NewToolResultError("file argument required"), nil
	}

	rec, found := ms.manager.FindRecord(file)
	if !found {
		return mcp.NewToolResultText("No matching record found."), nil
	}

	jsonBytes, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal record"), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
