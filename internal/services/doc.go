// Package services holds the application logic behind the terminal client:
// the customer record store, local accounts, preferences, file transfer and
// reminder composition.
//
// Each service is exposed as an interface and constructed with its
// repositories; none of them touch storage keys directly.
package services
