// Package client talks to the auth API over HTTP/JSON.
//
// The Client interface is what the CLI depends on; HTTPClient implements it
// with net/http. Server rejections come back as *ServerError carrying the
// response's "error" text. Transport failures are wrapped in ErrUnavailable
// and 401 answers also match ErrUnauthorized, both usable with errors.Is.
package client
