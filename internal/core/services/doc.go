// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The scoring pipeline (keyword extraction, overlap scoring, chunk
// relevance) is deterministic and side-effect free; everything with
// I/O goes through a driven port so it can be swapped in tests.
package services
