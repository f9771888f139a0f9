// Package api provides HTTP handlers for the API. Handlers are thin
// presentation glue: they decode and validate requests, call the services,
// and translate errors into sanitized responses.
package api
