/*
Package errors provides semantic error types for the AssetRegistry library.

The package defines the closed set of failure kinds surfaced by registry
operations, each checkable with the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("asset not found")
	    ErrAlreadyExists   = errors.New("asset already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrPrivateData     = errors.New("private data failure")
	    ErrOperation       = errors.New("operation failure")
	    ErrInvalidEncoding = errors.New("invalid encoding")
	)

Usage:

	// Check error type
	encoded, err := reg.QueryAsset(ctx, "A1")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("asset %s does not exist", "A1")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Asset", "A1")
	err := errors.NewValidationError("owner", "must not be blank")
	err := errors.NewOperationError("ledger write", "A1", cause)

Errors that wrap a lower-level cause (PrivateDataError, OperationError,
EncodingError) implement Unwrap, so the original gateway or parse error
stays reachable for diagnostics.
*/
package errors
