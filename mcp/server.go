// Package mcp exposes documentation search and navigation as Model Context
// Protocol tools using github.com/mark3labs/mcp-go.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docnav"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Services groups the domain services behind the tools.
type Services struct {
	Documents  docnav.DocumentService
	Search     docnav.SearchService
	Navigation docnav.NavigationService
	Segmenter  docnav.Segmenter

	// Prefix is the address prefix of documents, e.g. "/docs".
	Prefix string
}

type SearchDocsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type ListDocumentsRequest struct{}

type ReadSectionRequest struct {
	Slug   string `json:"slug"`   // Document slug, e.g. "guide/setup"
	Anchor string `json:"anchor"` // Section anchor; empty reads the whole document
}

type GetOutlineRequest struct {
	Slug string `json:"slug"`
}

type GetNeighborsRequest struct {
	Slug string `json:"slug"`
}

type NeighborsResponse struct {
	Prev *NeighborLink `json:"prev"`
	Next *NeighborLink `json:"next"`
}

type NeighborLink struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Address string `json:"address"`
}

// NewServer creates an MCP server with the documentation tools.
func NewServer(svc Services) *server.MCPServer {
	s := server.NewMCPServer(
		"docnav",
		Version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("search_docs",
		mcp.WithDescription("Search the documentation by page title, section heading and text. Returns ranked results with addresses and snippets."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive text to look for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 30)"),
		),
	), mcp.NewTypedToolHandler(searchDocsHandler(svc)))

	s.AddTool(mcp.NewTool("list_documents",
		mcp.WithDescription("List every document with its slug and title"),
	), mcp.NewTypedToolHandler(listDocumentsHandler(svc)))

	s.AddTool(mcp.NewTool("read_section",
		mcp.WithDescription("Read the Markdown of one section of a document, or the whole document when no anchor is given"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Document slug, e.g. 'guide/setup'"),
		),
		mcp.WithString("anchor",
			mcp.Description("Section anchor as returned by search_docs or get_outline"),
		),
	), mcp.NewTypedToolHandler(readSectionHandler(svc)))

	s.AddTool(mcp.NewTool("get_outline",
		mcp.WithDescription("List the headings of a document with their anchors"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Document slug, e.g. 'guide/setup'"),
		),
	), mcp.NewTypedToolHandler(getOutlineHandler(svc)))

	s.AddTool(mcp.NewTool("get_neighbors",
		mcp.WithDescription("Get the previous and next documents in reading order"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Document slug, e.g. 'guide/setup'"),
		),
	), mcp.NewTypedToolHandler(getNeighborsHandler(svc)))

	return s
}

// Serve speaks the stdio transport of s over in and out until ctx is
// canceled or in is exhausted.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

func searchDocsHandler(svc Services) func(ctx context.Context, request mcp.CallToolRequest, args SearchDocsRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SearchDocsRequest) (*mcp.CallToolResult, error) {
		if strings.TrimSpace(args.Query) == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		results, err := svc.Search.Search(ctx, args.Query)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("search failed: %s", docnav.ErrorMessage(err))), nil
		}
		if args.Limit > 0 && len(results) > args.Limit {
			results = results[:args.Limit]
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		return mcp.NewToolResultText(docnav.FormatResults(results, args.Query, svc.Prefix)), nil
	}
}

func listDocumentsHandler(svc Services) func(ctx context.Context, request mcp.CallToolRequest, args ListDocumentsRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListDocumentsRequest) (*mcp.CallToolResult, error) {
		docs, err := svc.Documents.ListDocuments(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %s", docnav.ErrorMessage(err))), nil
		}

		lines := make([]string, len(docs))
		for i, d := range docs {
			lines[i] = d.Path() + ": " + d.Title
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	}
}

func readSectionHandler(svc Services) func(ctx context.Context, request mcp.CallToolRequest, args ReadSectionRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ReadSectionRequest) (*mcp.CallToolResult, error) {
		doc, body, res := findBody(ctx, svc, args.Slug)
		if res != nil {
			return res, nil
		}
		if args.Anchor == "" {
			return mcp.NewToolResultText(body), nil
		}

		section := docnav.FindSection(svc.Segmenter.Segment(body), args.Anchor)
		if section == nil {
			return mcp.NewToolResultError(fmt.Sprintf("section %q not found in %s", args.Anchor, doc.Path())), nil
		}
		return mcp.NewToolResultText(strings.Repeat("#", section.Level) + " " + section.Heading + section.Raw), nil
	}
}

func getOutlineHandler(svc Services) func(ctx context.Context, request mcp.CallToolRequest, args GetOutlineRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetOutlineRequest) (*mcp.CallToolResult, error) {
		_, body, res := findBody(ctx, svc, args.Slug)
		if res != nil {
			return res, nil
		}
		outline := docnav.FormatOutline(svc.Segmenter.Segment(body))
		if outline == "" {
			return mcp.NewToolResultText("No headings."), nil
		}
		return mcp.NewToolResultText(outline), nil
	}
}

func getNeighborsHandler(svc Services) func(ctx context.Context, request mcp.CallToolRequest, args GetNeighborsRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetNeighborsRequest) (*mcp.CallToolResult, error) {
		if args.Slug == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}

		pair, err := svc.Navigation.Neighbors(ctx, docnav.SplitSlug(args.Slug))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("navigation failed: %s", docnav.ErrorMessage(err))), nil
		}

		response := NeighborsResponse{
			Prev: link(pair.Prev, svc.Prefix),
			Next: link(pair.Next, svc.Prefix),
		}
		responseBytes, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}

// findBody looks up the document for slug and returns its body without the
// header block. A non-nil result reports a failure to the client.
func findBody(ctx context.Context, svc Services, slug string) (*docnav.Document, string, *mcp.CallToolResult) {
	if slug == "" {
		return nil, "", mcp.NewToolResultError("slug is required")
	}

	doc, err := svc.Documents.FindDocument(ctx, docnav.SplitSlug(slug))
	if err != nil {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("lookup failed: %s", docnav.ErrorMessage(err)))
	} else if doc == nil {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("document %q not found", slug))
	}

	raw, err := svc.Documents.ReadSource(ctx, doc)
	if err != nil {
		return nil, "", mcp.NewToolResultError(fmt.Sprintf("read failed: %s", docnav.ErrorMessage(err)))
	}
	_, body := docnav.SplitHeader(raw)
	return doc, body, nil
}

func link(doc *docnav.Document, prefix string) *NeighborLink {
	if doc == nil {
		return nil
	}
	return &NeighborLink{
		Slug:    doc.Path(),
		Title:   doc.Title,
		Address: docnav.Address(prefix, doc.Slug, ""),
	}
}
