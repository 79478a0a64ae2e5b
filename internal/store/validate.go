package store

import (
	"fmt"
	"net/url"
)

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: url %q: %v", ErrValidation, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: url %q must include a scheme and host", ErrValidation, raw)
	}
	return nil
}
