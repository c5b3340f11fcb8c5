// Package internal documents the campus board server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, flash messages, and routing
// - domain: business logic and domain models
// - storage: MySQL access, repositories, and migrations
// - auth, config, metrics, validation: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
