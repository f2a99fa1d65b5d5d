// Package api is the HTTP transport to the remote auction service.
//
// Unlike a conventional REST client, error statuses here are data: 402, 404,
// 410 and 422 carry auction semantics and are returned to the caller as a
// regular Response for classification. The error return of every call is
// reserved for network-level failures (*TransportError), so callers can
// always tell "the service answered with an error" from "the service could
// not be reached".
package api
