// Package docnav indexes a tree of Markdown documentation, splits every
// document into addressable sections, and answers free-text queries and
// navigation requests (sidebar, previous/next) over the result.
//
// This package contains domain types, the pure algorithms shared by the
// index and the renderer, and service interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goldmark/, bubbletea/).
package docnav
