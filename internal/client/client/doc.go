// Package client is a thin HTTP client for the game server's JSON API.
//
// Every operation maps to one endpoint. Failures reported by the server
// (400 with {ok:false,error,code}) come back as *APIError; transport
// failures are wrapped in ErrUnavailable.
package client
