// Package models defines the domain entities shared by the list state manager, the data source and the renderers.
//
//   - [Item] : an immutable entry (id, name, description) that moves between lists
//   - [Record] : one flat row from the data source, carrying its list number
//   - [ListCollection] : list number → ordered items; insertion order is display order
//   - [Side] : which selected list (left/right) an item returns to from the new list
//
// [ListCollection.Clone] is the snapshot primitive used for merge-session checkpoints.
package models
