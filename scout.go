// Package scout extracts contact and social-presence signals from
// rendered public profile pages. Given a page's text and link inventory
// it produces a deduplicated summary of emails, per-platform social
// links, generic websites, and a business-contactability signal.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// rod/, gemini/).
package scout
