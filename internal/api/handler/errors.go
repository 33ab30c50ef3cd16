package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/mindcare/internal/api/apierr"
)

// maxBodyBytes bounds JSON request bodies; forum posts are the largest
const maxBodyBytes = 64 << 10

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// decode reads the JSON body into dst, writing a 400 and returning false
// when it is missing, malformed or too large
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, NewInvalidRequestError("request body too large"))
	} else {
		WriteError(w, NewInvalidRequestError("invalid request body"))
	}
	return false
}
