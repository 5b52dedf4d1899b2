// Package errs provides standardized error types for the marketplace application.
// Every error type pairs a sentinel (for errors.Is) with a struct carrying details,
// constructors with and without a cause, Error() formatting and Unwrap() support.
//
// The package covers the error taxonomy the HTTP layer maps to status codes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation (400)
//   - ObjectNotFoundError: absent or not owned by the caller (404)
//   - ForbiddenError: role lacks the capability for the operation (403)
//   - ConflictError: a state rule was violated, e.g. an invalid transition (400)
//   - VersionIsInvalidError: a concurrent writer won the race (409)
package errs
