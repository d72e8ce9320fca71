// Package storage defines the persistence contract for player records.
//
// A store loads the whole roster at startup and rewrites it whole on every
// save. Implementations live in subpackages:
//   - flatfile: the two line-oriented text files (accounts, inventories).
//   - sqlite: an embedded SQLite database with migrations.
//
// Health and depth are session-only and never reach a store.
package storage
