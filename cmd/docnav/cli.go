package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docnav"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Root   string
	Prefix string

	Documents  docnav.DocumentService
	Search     docnav.SearchService
	Navigation docnav.NavigationService
	Segmenter  docnav.Segmenter
	Renderer   docnav.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root         string `default:"docs" env:"DOCNAV_ROOT" help:"Content root directory"`
	Prefix       string `default:"/docs" env:"DOCNAV_PREFIX" help:"Address prefix of documents"`
	SidebarLabel string `default:"Docs" env:"DOCNAV_SIDEBAR_LABEL" help:"Label of the sidebar section used without _sidebar.json"`
	AssetsDir    string `env:"DOCNAV_ASSETS_DIR" help:"Directory served under /assets/ for relative images"`
	Verbose      bool   `short:"v" help:"Log debug output to stderr"`
	LogJSON      bool   `name:"log-json" help:"Log as JSON"`

	List    ListCmd    `cmd:"" help:"List all documents"`
	Search  SearchCmd  `cmd:"" help:"Search the documentation"`
	Outline OutlineCmd `cmd:"" help:"Show the section outline of a document"`
	Nav     NavCmd     `cmd:"" help:"Show previous and next documents"`
	Sidebar SidebarCmd `cmd:"" help:"Show the sidebar"`
	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
	MCP     MCPCmd     `cmd:"" name:"mcp" help:"Serve MCP tools over stdio"`
	Browse  BrowseCmd  `cmd:"" help:"Search interactively in the terminal"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	Slug string `arg:"" help:"Document slug, e.g. guide/setup"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct {
	Slug string `arg:"" help:"Document slug, e.g. guide/setup"`
}

// SidebarCmd is the "sidebar" subcommand.
type SidebarCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string  `default:":8080" env:"DOCNAV_ADDR" help:"Listen address"`
	BaseURL     string  `name:"base-url" env:"DOCNAV_BASE_URL" help:"Absolute site URL used in sitemap.xml"`
	CacheSize   int     `default:"256" env:"DOCNAV_CACHE_SIZE" help:"Rendered page cache size"`
	RateLimit   float64 `env:"DOCNAV_RATE_LIMIT" help:"Requests per second per client (0 disables)"`
	RateBurst   int     `default:"20" env:"DOCNAV_RATE_BURST" help:"Request burst per client"`
	RateClients int     `default:"10000" env:"DOCNAV_RATE_CLIENTS" help:"Number of clients tracked by the rate limiter"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}
