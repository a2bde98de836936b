package model

// ErrorResponse is the error body returned by every endpoint. The capitalised
// JSON keys match what the storefront UI expects.
type ErrorResponse struct {
	Error   string `json:"Error"`
	Message string `json:"Message"`
}

// Error kinds carried in ErrorResponse.Error.
const (
	ErrKindValidation         = "ValidationError"
	ErrKindProductNotFound    = "ProductNotFoundError"
	ErrKindDuplicateCartEntry = "DuplicateCartEntryError"
	ErrKindCartMismatch       = "CartMismatchError"
	ErrKindStorageUnavailable = "StorageUnavailableError"
	ErrKindInternal           = "InternalError"
)

// DomainError is a business-logic failure the transport layer maps to a
// distinct status code.
type DomainError struct {
	Kind    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(kind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingFields        = NewDomainError(ErrKindValidation, "Missing all needed info")
	ErrInvalidQuantity      = NewDomainError(ErrKindValidation, "Quantity must be at least 1")
	ErrProductNotFound      = NewDomainError(ErrKindProductNotFound, "No Product Matched Found")
	ErrProductAlreadyInCart = NewDomainError(ErrKindDuplicateCartEntry, "Product Already In Cart")
	ErrDuplicateCartEntry   = NewDomainError(ErrKindDuplicateCartEntry, "Cart entry id already in use")
	ErrCartMismatch         = NewDomainError(ErrKindCartMismatch, "Unable to delete from cart")
	ErrStorageUnavailable   = NewDomainError(ErrKindStorageUnavailable, "Storage unavailable")
)
