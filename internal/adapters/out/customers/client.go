// Package customers provides the outbound adapter that asks the customer
// management service whether a customer exists. The single network call is
// wrapped in a retry policy and a circuit breaker so a flapping or dead
// downstream cannot stall order creation.
package customers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const existsPathFormat = "%s/internal/api/v1/customers/%s/exists"

// apiEnvelope mirrors the response wrapper used by the customer service.
type apiEnvelope struct {
	Success   bool                `json:"success"`
	Data      *customerExistsData `json:"data"`
	Message   string              `json:"message"`
	Timestamp string              `json:"timestamp"`
	Path      string              `json:"path"`
}

type customerExistsData struct {
	CustomerID string `json:"customerId"`
	Exists     bool   `json:"exists"`
	Message    string `json:"message"`
}

// existsClient performs one customer existence check without any resilience
// policy. An authoritative negative verdict is (false, nil); an error always
// means the verdict is unknown.
type existsClient interface {
	exists(ctx context.Context, customerID string) (bool, error)
}

// httpExistsClient calls the customer service over HTTP.
type httpExistsClient struct {
	baseURL    string
	httpClient *http.Client
}

func newHTTPExistsClient(baseURL string, timeout time.Duration) *httpExistsClient {
	return &httpExistsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// exists performs the underlying read. Classification rules:
//   - a 404 is an authoritative "does not exist", not an error
//   - a transport failure or an unexpected status is an error, left
//     unclassified for the caller's retry policy
//   - a malformed or unsuccessful envelope on a 200 is treated as
//     "does not exist", matching the permissive behavior of the
//     service's original consumers
func (c *httpExistsClient) exists(ctx context.Context, customerID string) (bool, error) {
	endpoint := fmt.Sprintf(existsPathFormat, c.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build customer service request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("customer service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("customer service responded with status %d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, nil
	}

	if !envelope.Success || envelope.Data == nil {
		return false, nil
	}

	return envelope.Data.Exists, nil
}
