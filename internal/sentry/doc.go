// Package sentry is a minimal client for the Sentry HTTP API.
//
// The client authenticates with a bearer token and exposes the handful of
// read endpoints the CLI needs: organizations, projects, unresolved issues,
// and project summaries. Requests are synchronous with a 30-second timeout
// and no retry policy; errors carry the HTTP status and response body.
//
// # Browser login
//
// LoginWithBrowser implements the implicit-grant OAuth flow: a loopback
// HTTP listener on port 8123 receives the redirect, a small page forwards
// the token out of the URL fragment, and a state nonce guards against
// injected callbacks. The OAuth application id comes from the
// SENTRY_CLIENT_ID environment variable.
package sentry
