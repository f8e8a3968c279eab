package repository

import (
	"errors"

	"gorm.io/gorm"
)

// IsRecordNotFound reports whether err is the store's "record not found"
// signal. Services use it to translate missing-row conditions into the
// NotFound error kind; every other store error propagates unchanged.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
