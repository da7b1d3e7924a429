package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestHTTPErrorUnwrapsThroughAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewHTTPError(404, "Not found"))

	var httpErr *HTTPError
	if !stderrors.As(wrapped, &httpErr) {
		t.Fatal("errors.As should find HTTPError")
	}
	if httpErr.StatusCode != 404 || httpErr.Message != "Not found" {
		t.Errorf("unexpected HTTPError: %+v", httpErr)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("startDate", "Invalid startDate")
	if err.Error() != "Invalid startDate" {
		t.Errorf("Error(): got %q", err.Error())
	}
}
