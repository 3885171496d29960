package cbr

import (
	"context"
	"io"
	"net/http"

	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/pkg/errors"
)

type Client struct {
	client *http.Client
}

func NewClient() *Client {
	return &Client{client: &http.Client{}}
}

// FetchPage downloads one upstream page and returns its raw markup. Any
// transport failure or non-200 status is reported as upstream unavailability;
// no retries are attempted.
func (c *Client) FetchPage(ctx context.Context, url string) (string, error) {
	const op = "cbr.FetchPage"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, op)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(entities.ErrUpstreamUnavailable, "%s: %v", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(entities.ErrUpstreamUnavailable, "%s: status %s", op, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(entities.ErrUpstreamUnavailable, "%s: %v", op, err)
	}

	return string(body), nil
}
