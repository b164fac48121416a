package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/docnav"
)

// Ensure Navigator implements docnav.NavigationService at compile time.
var _ docnav.NavigationService = (*Navigator)(nil)

// Navigator orders documents for the sidebar and previous/next links,
// following _sidebar.json in the content root when it is present and valid.
// The configuration is read on every call.
type Navigator struct {
	documents docnav.DocumentService
	root      string

	// Label names the implicit section used without configuration.
	Label string

	// OnConfigError, if set, is called when the configuration file exists
	// but cannot be read or parsed. The default ordering is used regardless.
	OnConfigError func(err error)
}

// NewNavigator returns a Navigator over documents with its configuration in
// root.
func NewNavigator(documents docnav.DocumentService, root string) *Navigator {
	return &Navigator{
		documents: documents,
		root:      root,
		Label:     docnav.DefaultSidebarLabel,
	}
}

// Sidebar returns the sidebar sections.
func (n *Navigator) Sidebar(ctx context.Context) ([]*docnav.SidebarSection, error) {
	docs, err := n.documents.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return docnav.BuildSidebar(docs, n.config(), n.Label), nil
}

// Neighbors returns the documents before and after slug.
func (n *Navigator) Neighbors(ctx context.Context, slug []string) (docnav.NavPair, error) {
	docs, err := n.documents.ListDocuments(ctx)
	if err != nil {
		return docnav.NavPair{}, err
	}
	sidebar := docnav.BuildSidebar(docs, n.config(), n.Label)
	return docnav.Neighbors(sidebar, docs, slug), nil
}

// config returns the parsed configuration, or nil when it is absent or
// invalid.
func (n *Navigator) config() *docnav.SidebarConfig {
	data, err := os.ReadFile(filepath.Join(n.root, docnav.SidebarConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		n.configError(err)
		return nil
	}

	cfg, err := docnav.ParseSidebarConfig(data)
	if err != nil {
		n.configError(err)
		return nil
	}
	return cfg
}

func (n *Navigator) configError(err error) {
	if n.OnConfigError != nil {
		n.OnConfigError(err)
	}
}
