// Package entity defines the core business entities for the domain layer.
package entity

// Branded identity types for aggregate roots. Each wraps an int64 so that
// ids of different entities cannot be confused through structural typing.

// UserID identifies a User.
type UserID int64

// Valid reports whether the id is a positive integer.
func (id UserID) Valid() bool { return id > 0 }

// Int64 returns the raw id value.
func (id UserID) Int64() int64 { return int64(id) }

// CategoryID identifies a Category.
type CategoryID int64

// Valid reports whether the id is a positive integer.
func (id CategoryID) Valid() bool { return id > 0 }

// Int64 returns the raw id value.
func (id CategoryID) Int64() int64 { return int64(id) }

// TransactionID identifies a Transaction.
type TransactionID int64

// Valid reports whether the id is a positive integer.
func (id TransactionID) Valid() bool { return id > 0 }

// Int64 returns the raw id value.
func (id TransactionID) Int64() int64 { return int64(id) }
