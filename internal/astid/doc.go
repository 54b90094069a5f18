// Package astid assigns reparse-stable identities to module items.
//
// A Map is built once per parsed file and maps small integer identities to
// node locators. Identities are assigned in breadth-first order, so an item's
// identity depends only on its ancestors and left siblings at each level:
// editing the inside of one item can never disturb the identity of another.
// That property is what makes the identities usable as incremental-cache
// keys: unaffected items keep unaffected cache entries across reparses.
//
// Handles come in three strengths: ErasedItemID (a bare integer, file-local),
// ID[N] (same integer plus a compile-time node-kind tag), and InFile[N]
// (kind-tagged and file-qualified, the form used as a database key). The
// only sanctioned way from a handle back to a live node is InFile.Node, which
// goes through the database's current parse; no code path may cache a *Node
// across recomputation boundaries.
package astid
