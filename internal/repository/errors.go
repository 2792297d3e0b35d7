package repository

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned by update operations when the target document does
// not exist. Deletes treat a missing document as a no-op instead.
var ErrNotFound = errors.New("document not found")

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
