package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := NewInvalidInput("Missing q parameter")

	domainErr := ToDomainError(err)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "Missing q parameter", domainErr.Message)
}

func TestToDomainErrorWrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewNotFound("No match found"))

	domainErr := ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestToDomainErrorFiberError(t *testing.T) {
	domainErr := ToDomainError(fiber.ErrNotFound)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)

	domainErr = ToDomainError(fiber.ErrMethodNotAllowed)
	assert.Equal(t, "REQUEST_FAILED", domainErr.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, domainErr.HTTPStatus)
}

func TestToDomainErrorGeneric(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	require.NotNil(t, domainErr)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}
