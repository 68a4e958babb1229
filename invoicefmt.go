// Package invoicefmt converts loosely-structured invoice HTML documents
// into a standardized, configurable HTML/PDF output. It extracts a
// canonical invoice record from the source markup and re-renders it
// through a fixed template driven by user configuration.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, sqlite/).
package invoicefmt
