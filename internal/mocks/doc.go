// Package mocks provides test doubles for the store and service interfaces.
// The store mocks are working in-memory implementations so service tests can
// exercise full read-modify-write cycles; the service mocks use overridable
// function fields for handler tests.
package mocks
