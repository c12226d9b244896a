// Package database provides the SQLite-backed persistence layer.
//
// The top-level package owns the connection and schema migration. Domain
// repositories live in subpackages (users, books, reviews, quotes, messages,
// interactions, likes, reposts, notifications, audit), each exposing a
// Repository created with NewRepository(db) that satisfies the small store
// interfaces defined by its consumers.
package database
