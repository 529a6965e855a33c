// Package organize implements the folder classification and reorganization
// engine.
//
// A run sweeps the immediate subdirectories of a source root. Each folder is
// classified by a recursive walk that resolves one date per media file, then
// voted into a dominant year/month bucket. A Decider (automatic or operator
// driven) picks the terminal action for the folder: accept it into its bucket
// under its current name, rename it, ungroup its files into per-file buckets,
// or skip it. The Mover executes the action with collision refusal and a
// cross-device copy fallback, and a final cleanup pass sweeps up emptied
// directories. Year-named folders are recognized as prior output and are
// never scanned again, so a second run over an unchanged tree moves nothing.
package organize
