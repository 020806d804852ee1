// Package ingestion drives the embed-and-load pipeline.
//
// The Loader takes the full sequence of fetched paper records and processes
// it in fixed-size contiguous batches: one embedding call per batch, one
// transactional commit per batch, and a fixed pause after each commit to
// bound the request rate against external services. Execution is strictly
// sequential; batch N completes before batch N+1 starts.
//
// Embedding calls are retried with exponential backoff. Commit failures are
// not retried: a failed commit aborts the entire run.
package ingestion
