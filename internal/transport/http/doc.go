// Package http contains the chi HTTP handlers for the dataset API.
// Handlers depend on service interfaces, translate service sentinel
// errors into RFC 7807 problem responses, and render success payloads
// with go-chi/render.
package http
