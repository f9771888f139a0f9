// Package store defines the persistence interfaces and shared error types
// used by the services. Implementations live under internal/platform.
package store
