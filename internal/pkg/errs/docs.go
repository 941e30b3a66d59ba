// Package errs holds the typed errors returned by domain and application
// code and mapped to status codes by the HTTP adapter.
//
// Every type wraps one sentinel, so callers classify with errors.Is:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError and
//     VersionIsInvalidError become 400 responses with field details
//   - ObjectNotFoundError becomes 404
//   - ValueIsDuplicatedError becomes 409
//
// Unwrap returns the sentinel and not the cause; the cause only appears in
// Error(). Field names can be qualified after the fact with PrefixParam:
//
//	err := errs.PrefixParam("job_order_items[2]", errs.NewValueIsInvalidError("material"))
//	// err reports field "job_order_items[2].material"
package errs
