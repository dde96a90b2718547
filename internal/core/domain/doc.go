// Package domain contains the core entities for revu: content chunks,
// job postings, scoring results, and conversation sessions.
// It has no dependencies on adapters or infrastructure.
package domain
