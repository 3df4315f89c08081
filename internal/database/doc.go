// Package database owns the write side of a quiz bank store.
//
// # Layout
//
// A store is a single SQLite file with three tables:
//
//	meta       # key/value description of the bank (title, author, version...)
//	questions  # one row per question, bilingual text, optional image
//	options    # answer choices, owned by exactly one question, ordered by sort_order
//
// The DDL lives in DefaultSchema and is applied verbatim; gorm is used for
// inserts and summary queries only, never for migrations.
//
// # Lifecycle
//
// Stores are rebuilt, not updated:
//
//	db, err := database.Create("./bank.db", database.Options{})
//	err = db.Transaction(func(tx *database.Database) error {
//		return tx.InsertQuestion(&entities.Question{...})
//	})
//
// Create deletes any existing file first, so identifiers always start from 1.
// Reading a finished store is done through the bank package.
package database
