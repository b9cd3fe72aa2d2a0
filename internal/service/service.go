// Package service contains the business logic.
//
// It sits between the handler and repository layers: it loads entities
// through repositories, applies the per-endpoint filtering rules, and
// projects entities into the flat DTOs that go over the wire. All
// NotFound/BadRequest decisions live here; handlers only bind input and
// write output.
package service
