// Package history keeps a SQLite ledger of processed inputs.
//
// Each row stores the outcome of one input of one run: its distance, record
// count, kernel, elapsed time and error text. Rows sharing a run ID belong to
// the same Run call. Store implements sortdist.HistoryRecorder.
package history
