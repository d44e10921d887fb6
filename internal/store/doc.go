// Package store defines the persistence interfaces consumed by the
// HTTP layer and the error vocabulary shared by all store
// implementations. Expected outcomes (missing entity, duplicate,
// broken reference) surface as sentinel errors; anything else is
// wrapped in StorageError and treated as an infrastructure failure.
package store
