package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// mapHTTPError turns a non-2xx ledger response back into the error the
// server raised. Ledger sentinels come back as themselves so their
// messages reach the user unchanged.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Code == "" {
		body.Message = strings.TrimSpace(string(resp.Body()))
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode())
		}
	}

	if sentinel := models.LedgerError(body.Code); sentinel != nil {
		return sentinel
	}

	switch {
	case body.Code == models.CodeUnauthenticated || resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, body.Message)
	case body.Code == models.CodeLoginExists:
		return ErrLoginExists
	case body.Code == models.CodeInvalidRequest || resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Message)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrLedgerUnavailable, resp.StatusCode(), body.Message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Message)
	}
}
