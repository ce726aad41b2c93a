// Package reveal replays a finished clustering run one cluster at a time.
//
// A Cursor holds a step k in [0, ClusterCount]. Its Snapshot is the generated
// 0/1 grid with the first k clusters overwritten by their labels, so stepping
// forward paints clusters in the order the indexer created them. The cursor
// starts fully revealed; Undo and Redo move one step and report whether each
// direction is still available, which is what a toolbar needs to enable or
// disable its buttons.
//
// The cursor never re-runs clustering. It copies what it needs from its
// Source at construction and is independent of it afterwards.
//
// Render and Format turn a snapshot into a text table: "*" for an empty cell,
// "1" for an occupied cell not yet revealed, the cluster label otherwise.
//
// A Cursor is not safe for concurrent use.
package reveal
