package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jasonyi-dev/ganttrack/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var envelope models.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrNoAccess, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, message)
	case http.StatusGone:
		return fmt.Errorf("%w: %s", ErrAccessExpired, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerFailure, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
