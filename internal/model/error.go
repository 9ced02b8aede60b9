package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeFixtureParse       = "FIXTURE_PARSE_ERROR"
	ErrCodeUnknownRestaurant  = "UNKNOWN_RESTAURANT"
	ErrCodeUnknownDish        = "UNKNOWN_DISH"
	ErrCodeRestaurantNotFound = "RESTAURANT_NOT_FOUND"
	ErrCodeDishNotFound       = "DISH_NOT_FOUND"
	ErrCodePriceNotFound      = "PRICE_NOT_FOUND"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrFixtureParse       = NewDomainError(ErrCodeFixtureParse, "Fixture document is missing or malformed")
	ErrUnknownRestaurant  = NewDomainError(ErrCodeUnknownRestaurant, "Menu link references a restaurant not present in the fixtures")
	ErrUnknownDish        = NewDomainError(ErrCodeUnknownDish, "Menu link references a dish not present in the fixtures")
	ErrRestaurantNotFound = NewDomainError(ErrCodeRestaurantNotFound, "Restaurant not found")
	ErrDishNotFound       = NewDomainError(ErrCodeDishNotFound, "Dish not found")
	ErrPriceNotFound      = NewDomainError(ErrCodePriceNotFound, "No listed price for this restaurant and dish")
)
