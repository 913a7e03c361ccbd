// Package cli implements the interactive terminal client for newsbrief.
//
// The client is a set of screens driven by a stack-based navigation
// controller: an authentication screen with login and signup modes, a signup
// OTP verification screen, a forgot/reset password flow, a home feed, and a
// profile screen. Each screen collects input, issues requests through the
// API client, and transitions navigation state based on the result.
//
// Everything runs on a single interactive goroutine; the session store and
// navigation stack are never touched concurrently.
package cli
