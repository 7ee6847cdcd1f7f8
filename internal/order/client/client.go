package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "ordersvc/internal/errors"
)

// serviceClient is the shared plumbing of the two detail fetchers. Every call
// is a single attempt bounded by the http.Client timeout; retries are the
// caller's business, not ours.
type serviceClient struct {
	httpClient *http.Client
	baseURL    string
	service    string
}

// detailEnvelope mirrors the {success, data} body the dependent services
// respond with. Data stays opaque, we pass it through untouched.
type detailEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *serviceClient) fetch(ctx context.Context, url, notFoundMsg string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewDependencyError(c.service, "creating request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewDependencyError(c.service, "calling service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewDependencyError(c.service, "reading response", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewUpstreamNotFoundError(c.service, notFoundMsg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewDependencyError(c.service, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var envelope detailEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewDependencyError(c.service, "unmarshalling response", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, apperrors.NewDependencyError(c.service, "response missing data payload", nil)
	}

	return envelope.Data, nil
}
