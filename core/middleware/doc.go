// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Checks the X-API-Key header (or api_key query parameter) against
//     the configured key. An empty key leaves the API open.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and the X-Ray-ID response header. A ray id
//     sent by the caller is reused.
//
// These middleware components are designed to be registered globally or per-route group
// in the main application setup.
package middleware
