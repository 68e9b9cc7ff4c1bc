package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/lexsight/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrTooLarge, msg)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage prefers the JSON "error" field and appends the extra fields
// of extraction failures.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err != nil || errResp.Error == "" {
		if body == "" {
			return http.StatusText(resp.StatusCode())
		}
		return body
	}

	msg := errResp.Error
	if errResp.SupportedTypes != "" {
		msg += " (supported: " + errResp.SupportedTypes + ")"
	}
	if errResp.ExtractedText != nil {
		msg += fmt.Sprintf(" (extracted %q)", strings.TrimSpace(*errResp.ExtractedText))
	}
	return msg
}
