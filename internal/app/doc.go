// Package app implements the application layer over the activity registry.
//
// The Service orchestrates store calls, records metrics, and formats the
// confirmation messages the HTTP layer returns. Business rules (duplicate
// signup, missing registration) live in the store so they stay atomic with
// the mutation.
package app
