// Package api handles incoming HTTP requests for the client records API.
// Handlers decode requests, call the client service, and render every
// outcome as a JSON envelope. MapErrorToStatusCode is the single place where
// service errors become HTTP status codes.
package api
