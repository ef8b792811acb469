// Package sitelens fetches web pages and extracts a normalized record of
// business-relevant fields (name, about text, industry, contact details)
// and page metadata from them. Pages whose content is assembled by
// client-side scripts are rendered in a headless browser first.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package sitelens
