package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

// envelope is the raw form of [models.Envelope] with undecoded data.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// unwrap decodes the response envelope into dst. A non-zero envelope code,
// or a body that is not an envelope, is mapped to an error.
func unwrap(resp *resty.Response, dst any) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}

	if env.Code != models.CodeOK {
		return mapEnvelopeError(env)
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: success envelope without data", ErrUnexpectedResponse)
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("%w: decode data: %w", ErrUnexpectedResponse, err)
	}

	return nil
}

func mapEnvelopeError(env envelope) error {
	switch env.Code {
	case models.CodeBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, env.Message)
	case models.CodeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, env.Message)
	case models.CodeNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, env.Message)
	case models.CodeInternal:
		return fmt.Errorf("%w: %s", ErrInternalServerError, env.Message)
	default:
		return fmt.Errorf("%w: code %d: %s", ErrUnexpectedResponse, env.Code, env.Message)
	}
}
