// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authenticated requests carry their access token inside the JSON body;
// handlers validate the token, run the operation, and echo the (possibly
// renewed) token back inside the response envelope. Cross-cutting concerns
// such as request tracing, access logging, and response compression are
// handled here before requests are delegated to the service layer.
package http
