package domain

import (
	"errors"
	"fmt"
)

// Error kinds. The boundary layer maps these to transport statuses.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSearchEmpty     = errors.New("search returned no rentals")
)

var (
	ErrCustomerNotFound     = fmt.Errorf("customer %w", ErrNotFound)
	ErrProductTypeNotFound  = fmt.Errorf("product type %w", ErrNotFound)
	ErrProductNotFound      = fmt.Errorf("product %w", ErrNotFound)
	ErrProductPriceNotFound = fmt.Errorf("product price %w", ErrNotFound)
	ErrRentalNotFound       = fmt.Errorf("rental %w", ErrNotFound)
	ErrRentalItemNotFound   = fmt.Errorf("rental item %w", ErrNotFound)
	ErrEmployeeNotFound     = fmt.Errorf("employee %w", ErrNotFound)

	ErrProductNotAvailable = fmt.Errorf("%w: product not available", ErrConflict)
	ErrCustomerEmailTaken  = fmt.Errorf("%w: customer email already registered", ErrConflict)
	ErrRentalCodeTaken     = fmt.Errorf("%w: rental code already in use", ErrConflict)
	ErrStillReferenced     = fmt.Errorf("%w: still referenced by other records", ErrConflict)

	ErrCustomerInvalid = fmt.Errorf("%w: customer email is required", ErrInvalidArgument)
)

// NotFound attaches the missing id to an entity not-found error.
func NotFound(err error, id int32) error {
	return fmt.Errorf("%w with id %d", err, id)
}

// ProductNotAvailable reports which product could not be allocated.
func ProductNotAvailable(productID int32) error {
	return fmt.Errorf("%w (id %d)", ErrProductNotAvailable, productID)
}

// StillReferenced reports a row that cannot be deleted while others point to it.
func StillReferenced(entity string, id int32) error {
	return fmt.Errorf("%w: %s %d", ErrStillReferenced, entity, id)
}

// InvalidArgument builds an ErrInvalidArgument with a message.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// SearchNotFoundError is returned when a rental search ran but matched nothing.
type SearchNotFoundError struct {
	Field string
	Value string
}

func (e *SearchNotFoundError) Error() string {
	return fmt.Sprintf("no rental found for %s: %s", e.Field, e.Value)
}

func (e *SearchNotFoundError) Unwrap() error {
	return ErrSearchEmpty
}
