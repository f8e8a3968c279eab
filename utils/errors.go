package utils

import (
	"errors"
	"fmt"
)

// ErrCartEmpty is returned by checkout when the cart has no items. The
// message is part of the API contract.
var ErrCartEmpty = errors.New("Cart is empty")

// NotFoundError reports that an entity id did not resolve.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
