package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/labelkit/labelkit/internal/config"
	"github.com/labelkit/labelkit/internal/descriptions"
	"github.com/labelkit/labelkit/internal/export"
	"github.com/labelkit/labelkit/internal/label"
)

// maxRecordsInResponse caps how many records a tool response lists in full
const maxRecordsInResponse = 100

// Server represents the MCP server instance
type Server struct {
	config        *config.Config
	labelService  *label.Service
	exportService *export.Service
	mcpServer     *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, labelService *label.Service, exportService *export.Service) (*Server, error) {
	if labelService == nil {
		return nil, fmt.Errorf("labelService cannot be nil")
	}
	if exportService == nil {
		return nil, fmt.Errorf("exportService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:        cfg,
		labelService:  labelService,
		exportService: exportService,
		mcpServer:     mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"label_extract_file",
		mcp.WithDescription(descriptions.LabelExtractFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the label PDF file"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleLabelExtractFile)

	extractDirectoryTool := mcp.NewTool(
		"label_extract_directory",
		mcp.WithDescription(descriptions.LabelExtractDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory containing label PDFs (uses default if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDirectoryTool, s.handleLabelExtractDirectory)

	exportXLSXTool := mcp.NewTool(
		"label_export_xlsx",
		mcp.WithDescription(descriptions.LabelExportXLSXDescription),
		mcp.WithString("directory",
			mcp.Description("Directory containing label PDFs (uses default if empty)"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the output .xlsx file"),
		),
	)
	s.mcpServer.AddTool(exportXLSXTool, s.handleLabelExportXLSX)

	mergeTool := mcp.NewTool(
		"label_merge",
		mcp.WithDescription(descriptions.LabelMergeDescription),
		mcp.WithString("directory",
			mcp.Description("Directory containing label PDFs (uses default if empty)"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the merged PDF"),
		),
	)
	s.mcpServer.AddTool(mergeTool, s.handleLabelMerge)

	filterTool := mcp.NewTool(
		"label_filter_unique_cod",
		mcp.WithDescription(descriptions.LabelFilterUniqueCODDescription),
		mcp.WithString("directory",
			mcp.Description("Directory containing label PDFs (uses default if empty)"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Path for the filtered PDF"),
		),
	)
	s.mcpServer.AddTool(filterTool, s.handleLabelFilterUniqueCOD)

	splitTool := mcp.NewTool(
		"label_split",
		mcp.WithDescription(descriptions.LabelSplitDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the label PDF file"),
		),
		mcp.WithNumber("pages_per_part",
			mcp.Required(),
			mcp.Description("Number of pages per output part (e.g. 200)"),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory for the part files (defaults to the input file's directory)"),
		),
	)
	s.mcpServer.AddTool(splitTool, s.handleLabelSplit)

	serverInfoTool := mcp.NewTool(
		"label_server_info",
		mcp.WithDescription(descriptions.LabelServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleLabelServerInfo)
}

// Handler functions

func (s *Server) handleLabelExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.labelService.ExtractFile(label.ExtractFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted %d order(s) from: %s\n", len(result.Records), result.Path)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Order blocks: %d\n", result.Blocks)
	if result.Blocks > len(result.Records) {
		responseText += fmt.Sprintf("Blocks without a valid phone number: %d\n", result.Blocks-len(result.Records))
	}
	responseText += "\n" + s.formatRecords(result.Records)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelExtractDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	directory := s.directoryArg(request)

	batch, errResult := s.extractDirectory(directory)
	if errResult != nil {
		return errResult, nil
	}

	responseText := fmt.Sprintf("Processed %d label PDF(s) in directory: %s\n\n", len(batch.Files), directory)
	for _, outcome := range batch.Files {
		if outcome.Error != "" {
			responseText += fmt.Sprintf("  %s: FAILED (%s)\n", outcome.Path, outcome.Error)
			continue
		}
		responseText += fmt.Sprintf("  %s: %d page(s), %d order(s)\n", outcome.Path, outcome.Pages, outcome.Records)
	}

	responseText += "\n" + s.formatStatistics(batch.Stats)
	responseText += "\n" + s.formatRecords(batch.Records)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelExportXLSX(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	directory := s.directoryArg(request)

	batch, errResult := s.extractDirectory(directory)
	if errResult != nil {
		return errResult, nil
	}

	data, err := s.exportService.OrdersXLSX(batch.Records)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to write workbook: %v", err)), nil
	}

	responseText := fmt.Sprintf("Wrote %d order(s) to workbook: %s\n", len(batch.Records), outputPath)
	responseText += "\n" + s.formatStatistics(batch.Stats)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelMerge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	directory := s.directoryArg(request)

	paths, errResult := s.corpusPaths(directory)
	if errResult != nil {
		return errResult, nil
	}

	result, err := s.labelService.MergeFiles(label.MergeFilesRequest{
		Paths:      paths,
		OutputPath: outputPath,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Merged %d file(s) into: %s\n", result.InputFiles, result.OutputPath)
	responseText += fmt.Sprintf("Total pages: %d\n", result.Pages)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelFilterUniqueCOD(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	directory := s.directoryArg(request)

	paths, errResult := s.corpusPaths(directory)
	if errResult != nil {
		return errResult, nil
	}

	result, err := s.labelService.FilterUniqueCOD(label.FilterUniqueCODRequest{
		Paths:      paths,
		OutputPath: outputPath,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("COD-only PDF written to: %s\n", result.OutputPath)
	responseText += fmt.Sprintf("Input files: %d\n", result.InputFiles)
	responseText += fmt.Sprintf("Kept pages: %d\n", len(result.KeptPages))
	responseText += fmt.Sprintf("Skipped prepaid pages: %d\n", result.SkippedPrepaid)
	responseText += fmt.Sprintf("Skipped duplicate pages: %d\n", result.SkippedDuplicate)

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelSplit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	pagesPerPart := 0
	if v, ok := args["pages_per_part"].(float64); ok {
		pagesPerPart = int(v)
	}

	outputDir := ""
	if v, ok := args["output_dir"].(string); ok {
		outputDir = v
	}

	result, err := s.labelService.SplitFile(label.SplitFileRequest{
		Path:         path,
		PagesPerPart: pagesPerPart,
		OutputDir:    outputDir,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Split %s (%d pages) into %d part(s):\n", result.Path, result.Pages, len(result.Parts))
	for i, part := range result.Parts {
		rng := result.Ranges[i]
		responseText += fmt.Sprintf("  %s (pages %d-%d)\n", part, rng.Start+1, rng.End)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleLabelServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	responseText := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	responseText += fmt.Sprintf("Corpus Directory: %s\n", s.config.LabelDirectory)
	responseText += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))

	files, err := s.labelService.FindPDFsInDirectory(s.config.LabelDirectory)
	if err != nil {
		responseText += fmt.Sprintf("Corpus Contents: unavailable (%v)\n\n", err)
	} else if len(files) == 0 {
		responseText += "Corpus Contents: no label PDFs found in corpus directory\n\n"
	} else {
		responseText += fmt.Sprintf("Corpus Contents (%d label PDFs):\n", len(files))
		for i, file := range files {
			if i >= 10 { // Limit to first 10 files for readability
				responseText += fmt.Sprintf("   ... and %d more files\n", len(files)-10)
				break
			}
			responseText += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		responseText += "\n"
	}

	responseText += usageGuidance

	return mcp.NewToolResultText(responseText), nil
}

const usageGuidance = `Label Corpus Usage Guide:

1. START WITH DISCOVERY:
   - Use 'label_server_info' to see the corpus directory contents

2. EXTRACT ORDERS:
   - Use 'label_extract_file' for a single label PDF
   - Use 'label_extract_directory' to process the whole corpus and get statistics
   - Order records carry name, phone, address, size, total and payment mode
   - A block without a valid phone number produces no record

3. EXPORT:
   - Use 'label_export_xlsx' to write all extracted orders to a workbook

4. PREPARE PRINT RUNS:
   - Use 'label_merge' to concatenate all label PDFs
   - Use 'label_filter_unique_cod' to drop prepaid pages and duplicate labels
   - Use 'label_split' to cut a large PDF into fixed-size parts

IMPORTANT NOTES:
- Always use absolute file paths
- Field extraction is best-effort: missing fields default to "Unknown", "None" or "Not found"
- Duplicate detection compares normalized address content, not whole pages`

// Helpers

// directoryArg returns the directory argument, falling back to the
// configured corpus directory.
func (s *Server) directoryArg(request mcp.CallToolRequest) string {
	args := request.GetArguments()
	if dir, ok := args["directory"].(string); ok && dir != "" {
		return dir
	}
	return s.config.LabelDirectory
}

// corpusPaths lists the label PDFs of a directory in deterministic order,
// or returns a ready error result.
func (s *Server) corpusPaths(directory string) ([]string, *mcp.CallToolResult) {
	files, err := s.labelService.FindPDFsInDirectory(directory)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	if len(files) == 0 {
		return nil, mcp.NewToolResultError(fmt.Sprintf("no label PDFs found in directory: %s", directory))
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.Path
	}
	return paths, nil
}

// extractDirectory runs a batch extraction over a directory, or returns a
// ready error result.
func (s *Server) extractDirectory(directory string) (*label.ExtractBatchResult, *mcp.CallToolResult) {
	paths, errResult := s.corpusPaths(directory)
	if errResult != nil {
		return nil, errResult
	}

	batch, err := s.labelService.ExtractBatch(label.ExtractBatchRequest{Paths: paths})
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return batch, nil
}

// Formatting methods

func (s *Server) formatRecords(records []label.OrderRecord) string {
	if len(records) == 0 {
		return "No order records extracted.\n"
	}

	text := "Orders:\n"
	for i, rec := range records {
		if i >= maxRecordsInResponse {
			text += fmt.Sprintf("... and %d more order(s)\n", len(records)-maxRecordsInResponse)
			break
		}
		text += fmt.Sprintf("%d. %s\n", i+1, rec.Name)
		text += fmt.Sprintf("   Phone: %s\n", rec.Phone)
		text += fmt.Sprintf("   Address 1: %s\n", rec.Address1)
		text += fmt.Sprintf("   Address 2: %s\n", rec.Address2)
		text += fmt.Sprintf("   City: %s, State: %s, Pincode: %s\n", rec.City, rec.State, rec.Pincode)
		text += fmt.Sprintf("   Size: %s, Total: %s, Mode: %s\n", rec.Size, rec.Total, rec.Mode)
	}

	return text
}

// sortedKeys returns the map keys in sorted order for stable output
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Server) formatStatistics(stats label.Statistics) string {
	text := "Statistics:\n"
	text += fmt.Sprintf("  Total Orders: %d\n", stats.TotalOrders)
	text += fmt.Sprintf("  Total: Rs.%s\n", stats.TotalPrice)
	text += fmt.Sprintf("  COD Orders: %d\n", stats.CODCount)
	text += fmt.Sprintf("  Prepaid Orders: %d\n", stats.PrepaidCount)
	text += fmt.Sprintf("  COD Duplicates: %d\n", stats.CODDuplicateCount)
	text += fmt.Sprintf("  COD Unique: %d\n", stats.CODUniqueCount)

	if len(stats.SizeCount) > 0 {
		text += "  Sizes:\n"
		for _, size := range sortedKeys(stats.SizeCount) {
			text += fmt.Sprintf("    %s: %d\n", size, stats.SizeCount[size])
		}
	}

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting labelkit MCP server in stdio mode")
		log.Printf("Label corpus directory: %s", s.config.LabelDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs library handles the transport differently; stdio is the
	// only wire-up for now
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
