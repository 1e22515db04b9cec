// Package lists implements the list state manager: the reducer behind the list merge workflow.
//
// A [Manager] owns four pieces of state:
//   - the live [models.ListCollection]
//   - the ingest-time baseline, restored when a cancel finds no checkpoint
//   - the selection: up to two list numbers, in the order they were picked
//   - the merge session: the synthesized new-list key and a single checkpoint
//
// # Merge sessions
//
// [Manager.BeginMerge] requires exactly two selected lists. It snapshots the collection into
// the checkpoint slot and adds an empty list under max(key)+1. That new list is a real entry
// of the collection for the whole session, so [Manager.CommitMerge] only resets the session
// flags while [Manager.CancelMerge] swaps the checkpoint back in.
//
//	Idle --BeginMerge--> Merging --CommitMerge|CancelMerge--> Idle
//
// # Errors
//
// Failures wrap the sentinels in the shared package:
//   - [shared.ErrMalformedData] : ingest records without a list number or id
//   - [shared.ErrSelection] : merge started without exactly two selected lists
//   - [shared.ErrInvalidState] : operation called in the wrong session state
//
// A failed operation leaves every piece of state untouched.
//
// A Manager is not safe for concurrent use; the rendering layer serializes calls.
package lists
