// Package cookie builds and parses the session cookie's wire
// representation.
//
// The outbound header value is rendered literally as
//
//	auth_token=<token>; HttpOnly; Secure; SameSite=Strict; Max-Age=<n>; Path=/
//
// because the attribute order is part of the contract with existing
// clients; net/http's cookie serialization orders attributes differently.
// A Max-Age of 0 deletes the cookie client-side.
//
// Parsing follows the Cookie request-header format (name=value pairs
// joined by ";"). Malformed pairs are skipped rather than rejected so one
// broken third-party cookie cannot knock out session loading.
//
// The cookie name is a fixed constant per deployment, configurable via the
// AUTH_COOKIE_NAME environment variable through Config.
package cookie
