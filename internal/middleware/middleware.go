// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, and panic recovery.
package middleware
