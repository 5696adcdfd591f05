// Package api provides the HTTP REST API for the account service.
//
// It exposes registration and login endpoints, and a set of protected
// resources (users, organisations, audit trail) guarded by a bearer-token
// middleware. The server follows the standard component lifecycle:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Response bodies follow the wire contract of the public clients:
// success responses use a status/message/data envelope, validation
// failures return a 422 with a field-level errors array, and the token
// gate distinguishes absent tokens (401) from failed verification (403).
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
