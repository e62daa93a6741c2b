// Package mcp exposes the wayleave service over the Model Context
// Protocol. Stdio is the primary transport.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/classify"
	"github.com/darlands/wayleave-scanner/internal/config"
	"github.com/darlands/wayleave-scanner/internal/letter"
	"github.com/darlands/wayleave-scanner/internal/scan"
	"github.com/darlands/wayleave-scanner/internal/wayleave"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *wayleave.Service
	mcpServer *server.MCPServer
	logger    zerolog.Logger
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *wayleave.Service, logger zerolog.Logger) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
		logger:    logger,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	scanDirectoryTool := mcp.NewTool(
		"scan_directory",
		mcp.WithDescription("Scan a folder tree for wayleave paperwork, pairing each folder's agreement document with its map"),
		mcp.WithString("directory",
			mcp.Description("Root folder to scan (uses the configured scan root if empty)"),
		),
	)
	s.mcpServer.AddTool(scanDirectoryTool, s.handleScanDirectory)

	classifyPDFTool := mcp.NewTool(
		"classify_pdf",
		mcp.WithDescription("Classify a single PDF as wayleave document, site map, generated letter, or unknown"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(classifyPDFTool, s.handleClassifyPDF)

	extractDocumentTool := mcp.NewTool(
		"extract_document",
		mcp.WithDescription("Extract homeowner names, address, and postcode from a wayleave agreement PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the agreement PDF"),
		),
		mcp.WithString("dialect",
			mcp.Description("Wayleave dialect: 'annual' or '15-year' (detected from the text if empty)"),
		),
	)
	s.mcpServer.AddTool(extractDocumentTool, s.handleExtractDocument)

	generateLetterTool := mcp.NewTool(
		"generate_letter",
		mcp.WithDescription("Generate the homeowner agreement letter for a wayleave agreement PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the agreement PDF"),
		),
		mcp.WithString("dialect",
			mcp.Description("Wayleave dialect: 'annual' or '15-year' (detected from the text if empty)"),
		),
		mcp.WithString("names",
			mcp.Description("Override the extracted homeowner names"),
		),
		mcp.WithString("salutation",
			mcp.Description("Override the derived salutation verbatim"),
		),
		mcp.WithString("address",
			mcp.Description("Override the extracted address: comma-separated lines with the postcode last"),
		),
	)
	s.mcpServer.AddTool(generateLetterTool, s.handleGenerateLetter)

	generateCompletionLetterTool := mcp.NewTool(
		"generate_completion_letter",
		mcp.WithDescription("Generate the closing letter that accompanies the countersigned wayleave and cheque"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the agreement PDF"),
		),
		mcp.WithString("dialect",
			mcp.Description("Wayleave dialect: 'annual' or '15-year' (detected from the text if empty)"),
		),
		mcp.WithString("names",
			mcp.Description("Override the extracted homeowner names"),
		),
		mcp.WithString("salutation",
			mcp.Description("Override the derived salutation verbatim"),
		),
		mcp.WithString("address",
			mcp.Description("Override the extracted address: comma-separated lines with the postcode last"),
		),
	)
	s.mcpServer.AddTool(generateCompletionLetterTool, s.handleGenerateCompletionLetter)

	serverInfoTool := mcp.NewTool(
		"server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleScanDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	directory := s.config.ScanRoot // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	entries, err := s.service.ScanDirectory(ctx, directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No wayleave paperwork found under: %s", directory)), nil
	}
	return mcp.NewToolResultText(s.formatScanEntries(directory, entries)), nil
}

func (s *Server) handleClassifyPDF(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ClassifyPDF(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Classification for %s\n", result.Path)
	responseText += fmt.Sprintf("Type: %s\n", result.TypeName)
	responseText += fmt.Sprintf("Pages: %d\n", result.PageCount)
	if result.Type == classify.TypeDocument {
		responseText += fmt.Sprintf("Dialect: %s\n", result.Dialect)
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dialect, err := parseDialect(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, resolved, err := s.service.ExtractDocument(path, dialect)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted from %s (%s dialect)\n", path, resolved)
	responseText += fmt.Sprintf("Names: %s\n", info.FullNames)
	responseText += fmt.Sprintf("Salutation: %s\n", info.SalutationName)
	responseText += fmt.Sprintf("Address:\n  %s\n", strings.Join(info.Address.Lines, "\n  "))
	responseText += fmt.Sprintf("Postcode: %s\n", info.Address.Postcode)
	if len(info.Address.ExtraPostcodes) > 0 {
		responseText += fmt.Sprintf("Additional postcodes seen: %s\n", strings.Join(info.Address.ExtraPostcodes, ", "))
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleGenerateLetter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := request.GetArguments()
	dialect, err := parseDialect(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifact, err := s.service.GenerateLetter(path, dialect, parseOverrides(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.formatArtifact(artifact)), nil
}

func (s *Server) handleGenerateCompletionLetter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := request.GetArguments()
	dialect, err := parseDialect(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	artifact, err := s.service.GenerateCompletionLetter(path, dialect, parseOverrides(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.formatArtifact(artifact)), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Scan root: %s\n", s.config.ScanRoot)
	text += fmt.Sprintf("Max file size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))
	text += "Available tools:\n"
	text += "• scan_directory - walk a folder tree and pair each folder's agreement with its map\n"
	text += "• classify_pdf - classify one PDF (document / map / letter / unknown) and its dialect\n"
	text += "• extract_document - pull homeowner names, address and postcode from an agreement\n"
	text += "• generate_letter - compose the agreement letter with signing-page instructions\n"
	text += "• generate_completion_letter - compose the closing letter for a completed wayleave\n"
	text += "• server_info - this overview\n"
	return mcp.NewToolResultText(text), nil
}

// Formatting methods
func (s *Server) formatScanEntries(root string, entries []scan.Entry) string {
	text := fmt.Sprintf("Found %d folder(s) with wayleave paperwork under: %s\n", len(entries), root)

	for i, entry := range entries {
		text += fmt.Sprintf("\n%d. %s\n", i+1, entry.RelativePath)
		if entry.Processed {
			text += "   Already processed\n"
		}
		anyFound := entry.PDFs.DocumentPDF != "" || entry.PDFs.MapPDF != "" ||
			len(entry.PDFs.AdditionalPDFs) > 0
		if entry.PDFs.DocumentPDF != "" {
			text += fmt.Sprintf("   Document: %s (%s)\n", entry.PDFs.DocumentPDF, entry.PDFs.WayleaveType)
		}
		if entry.PDFs.MapPDF != "" {
			text += fmt.Sprintf("   Map: %s\n", entry.PDFs.MapPDF)
		}
		for _, extra := range entry.PDFs.AdditionalPDFs {
			text += fmt.Sprintf("   Additional: %s\n", extra)
		}
		if anyFound && !entry.PDFs.Complete() {
			text += "   Incomplete: document/map pair not fully resolved\n"
		}
	}

	return text
}

func (s *Server) formatArtifact(artifact *letter.Artifact) string {
	text := fmt.Sprintf("Suggested filename: %s\n", artifact.SuggestedFilename)
	text += "\nLetter:\n"
	text += artifact.Content
	return text
}

// parseDialect reads the optional dialect argument.
func parseDialect(args map[string]any) (classify.WayleaveType, error) {
	raw, ok := args["dialect"].(string)
	if !ok || raw == "" {
		return classify.WayleaveUnknown, nil
	}
	switch raw {
	case "annual":
		return classify.WayleaveAnnual, nil
	case "15-year":
		return classify.WayleaveFifteenYear, nil
	default:
		return classify.WayleaveUnknown, fmt.Errorf("invalid dialect: %s (must be 'annual' or '15-year')", raw)
	}
}

// parseOverrides reads the optional names/salutation/address overrides.
// The address override is comma-separated lines with the postcode last.
func parseOverrides(args map[string]any) letter.Overrides {
	var ov letter.Overrides
	if names, ok := args["names"].(string); ok {
		ov.Names = names
	}
	if salutation, ok := args["salutation"].(string); ok {
		ov.Salutation = salutation
	}
	if address, ok := args["address"].(string); ok && address != "" {
		ov.Address = parseAddressOverride(address)
	}
	return ov
}

func parseAddressOverride(raw string) *letter.AddressRecord {
	parts := strings.Split(raw, ",")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	postcode := letter.NormalizePostcode(lines[len(lines)-1])
	return &letter.AddressRecord{
		Lines:    lines[:len(lines)-1],
		Postcode: postcode,
	}
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
		s.logger.Debug().
			Str("scan_root", s.config.ScanRoot).
			Msg("starting wayleave MCP server in stdio mode")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs transport only serves stdio for now.
	s.logger.Warn().Msg("server mode not yet implemented, falling back to stdio")
	return s.runStdioMode(ctx)
}
