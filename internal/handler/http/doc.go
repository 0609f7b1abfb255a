// Package http implements the HTTP transport layer of the application.
//
// It wires the GraphQL endpoint, the version endpoint, and the middleware
// stack around them. Cross-cutting concerns such as viewer authentication,
// request tracing, access logging, and response compression are handled in
// this package before requests reach the resolvers.
package http
