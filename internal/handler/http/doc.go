// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Requests pass an ordered list of interceptors (tracing, access log,
// metrics, HTTPS redirect, rate limit, API version, authentication,
// authorization, CORS) before they are delegated to the service layer.
package http
