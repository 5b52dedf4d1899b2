// Package user holds the marketplace's view of accounts: identity, role and
// whether the account is active. Credentials and signup belong to the auth
// collaborator; this package only models what the booking core reads.
package user
