package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Database error sentinel values
var (
	ErrDatabase = errors.New("database error")
)

// NewNotFound reports that an entity does not exist in the store.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%w: %s", ErrNotFound, entity),
	}
}

// NewDatabaseError wraps a driver/ORM failure with the operation and
// entity it happened on. Always a 500 to the caller.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%w: %s %s", ErrDatabase, operation, entity),
		Cause:      cause,
	}
}

func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}
