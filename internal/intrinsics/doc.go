// Package intrinsics decides which native runtime support functions a
// compiled body needs and builds the ordered table used for indirect call
// dispatch.
//
// The output of a collection pass is a Map from FunctionPrototype to the
// concrete low-level function type, plus a needs-allocation flag. The Map
// iterates in prototype order and insertion is idempotent, so its contents,
// never the traversal order that discovered them, determine emitted output.
// That is the determinism contract the backend relies on for reproducible
// builds and hot-reload diffing.
package intrinsics
