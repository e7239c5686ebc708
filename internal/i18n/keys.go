// Package i18n provides internationalization support for the replenishment
// service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyStoreUnavailable indicates the dataset store cannot be reached.
	ErrKeyStoreUnavailable = "error.store_unavailable"

	// ErrKeyNoOrderData indicates no order dataset has been uploaded.
	ErrKeyNoOrderData = "error.no_order_data"
	// ErrKeyEmptyAfterFilter indicates the packaging filter removed every row.
	ErrKeyEmptyAfterFilter = "error.empty_after_filter"
	// ErrKeyNoConfiguredCombinations indicates the depot-article configuration
	// removed every row.
	ErrKeyNoConfiguredCombinations = "error.no_configured_combinations"
	// ErrKeyMissingDepotName indicates a truck plan request without a depot.
	ErrKeyMissingDepotName = "error.missing_depot_name"
	// ErrKeyInvalidUpload indicates a malformed or incomplete dataset upload.
	ErrKeyInvalidUpload = "error.invalid_upload"
)

// Success message translation keys.
const (
	// SuccessKeyCalculated indicates a completed replenishment calculation.
	SuccessKeyCalculated = "success.calculated"
	// SuccessKeyUploaded indicates a stored dataset upload.
	SuccessKeyUploaded = "success.uploaded"
)
