// Package common contains shared constants and sentinel errors used across
// newsbrief components.
package common

// AccessTokenHeaderName is the HTTP header that carries the access token on
// authenticated requests.
const AccessTokenHeaderName = "x-auth-token"
