// Package api defines the request and response messages of the portal's
// Connect services. Messages travel as JSON; amounts are decimal strings.
//
// Validation rules are expressed as `validate` struct tags and checked by the
// service layer before any handler logic runs.
package api
