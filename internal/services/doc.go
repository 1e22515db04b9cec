// Package services defines the [Source] interface for list data providers and implements it over HTTP.
//
// # Lists Service
//
// [ListsService] performs a GET against the configured endpoint and expects
//
//	{ "lists": [ { "id": 1, "name": "...", "description": "...", "list_number": 3 }, ... ] }
//
// An optional bearer token is attached by wrapping the client transport with [oauth2.Transport]
// over a static token source.
//
// Every fetch first waits on a [rate.Limiter], so a user mashing "retry" after a failed load
// produces at most one request per configured interval.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrAPIRequest] : transport failure or non-2xx status
//   - [shared.ErrUnexpectedFormat] : body is not an object with a "lists" array
//   - [shared.ErrMalformedData] : an element of "lists" cannot be decoded as a record
//
// All three are reported by the renderers as a load failure with a retry affordance.
package services
