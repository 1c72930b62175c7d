// Package client implements signup.AccountCreator over HTTP. It resolves the
// create-account operation from the bundled OpenAPI contract, checks the
// outgoing body against the operation's schema, and tags each request with a
// uuid request id.
package client
