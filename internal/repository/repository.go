// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer. Each
// repository is exposed through an interface so services can be tested
// against in-memory fakes.
//
// Absence is reported as a nil entity (or a false "deleted"/"updated"
// flag), never as an error: the service layer decides what a missing row
// means for the client.
package repository
