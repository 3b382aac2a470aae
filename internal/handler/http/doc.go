// Package http implements the HTML transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// server-rendered pages. Cross-cutting concerns such as session decoding,
// anti-forgery checks, request tracing, and access logging are handled in
// this package before requests are delegated to the service layer.
package http
