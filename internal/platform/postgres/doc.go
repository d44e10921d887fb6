// Package postgres implements the store interfaces against PostgreSQL
// using pgx. Driver errors are translated once, in MapError, into the
// store package's vocabulary: expected outcomes become sentinel
// errors, everything else becomes a StorageError that the HTTP layer
// reports generically.
package postgres
