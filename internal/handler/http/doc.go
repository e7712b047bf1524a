// Package http implements the REST interface of the identity service.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and request metrics are handled here; identity
// checks are delegated to guard chains before requests reach the service
// layer.
package http
