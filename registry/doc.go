// Package registry implements the numeric handle table that bridges
// foreign callers unable to hold owned objects. An entry always holds
// an owning Logger reference, never a raw pointer, so removing the
// entry is sufficient for correct teardown; lookups hand out clones so
// a concurrent removal can never free an instance out from under a
// caller mid-operation.
package registry
