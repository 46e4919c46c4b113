package dataset

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSource downloads tables from {baseURL}/{table}.csv.
type HTTPSource struct {
	client *resty.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv")

	return &HTTPSource{client: client}
}

func (s *HTTPSource) Fetch(ctx context.Context, table string) ([]Row, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/" + fileName(table))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("fetch %s: %w", table, ErrTableNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", table, resp.Status())
	}

	rows, err := ParseCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", table, err)
	}
	return rows, nil
}
