// Package wikisect provides a CLI-based encyclopedia page sectioner.
// It fetches a single article page, splits it at heading boundaries, and
// reports the most frequent non-trivial words and every hyperlink found in
// each section.
//
// This package contains domain types, interfaces, and the pure section,
// word, and link logic following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, yaml/).
package wikisect
