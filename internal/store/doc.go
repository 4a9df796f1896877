// Package store defines the persistence interfaces for the shopping
// list service along with the sentinel errors shared by all
// implementations. Concrete backends live under
// internal/platform/postgres.
package store
