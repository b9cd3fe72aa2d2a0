// Package domain holds the store's entities and their wire projections.
//
// Entities mirror the database rows one-to-one and navigate in a single
// direction: a parent owns its child slice, a child holds its parent's id
// plus a non-owning pointer reference. The object graph is therefore
// acyclic and serialization never has to break cycles.
//
// DTOs are the flat, hand-built shapes actually written to clients.
// Entities themselves are never serialized.
package domain
