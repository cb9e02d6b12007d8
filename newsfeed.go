// Package newsfeed extracts a structured news feed from a saved HTML snapshot
// of a news-listing page and regroups the extracted items by editorial
// category.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/).
package newsfeed
