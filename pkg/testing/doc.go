// Package testing provides test utilities for composed layout trees.
//
// # Snapshots
//
// A Snapshot is a stable JSON serialization of a composed engine tree.
// Capture one with CaptureSection or CaptureElement and compare it against
// a golden file with MatchesFile. On mismatch the failure message carries a
// unified diff; set MOSAIC_UPDATE_SNAPSHOTS=1 to rewrite the golden files
// instead.
//
// # Finders
//
// For assertions that do not warrant a golden file, the structural finders
// count and address elements directly: LeafCount, CompositeCount,
// CollectLeaves, and ElementAt, which follows an index path from the root.
package testing
