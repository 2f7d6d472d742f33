package oai

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	metadataPrefix = "oai_dc"

	maxRetries       = 3
	retryBackoffBase = 2 * time.Second
	requestDelay     = 2 * time.Second
)

// Client is an OAI-PMH harvesting client for a single repository endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Delay between paginated requests, to stay polite with repository
	// servers. Tests set this to zero.
	RequestDelay time.Duration
}

// NewClient creates a client for the given OAI-PMH base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		RequestDelay: requestDelay,
	}
}

// ListSets returns every set the repository advertises, following
// resumption tokens across pages.
func (c *Client) ListSets(ctx context.Context) ([]Set, error) {
	slog.Info("Discovering sets", "base_url", c.BaseURL)

	resp, err := c.request(ctx, url.Values{"verb": {"ListSets"}})
	if err != nil {
		return nil, err
	}

	var sets []Set
	for {
		if resp.Error != nil {
			if resp.Error.Code == "noSetHierarchy" {
				return nil, nil
			}
			return nil, fmt.Errorf("OAI-PMH error %s: %s", resp.Error.Code, strings.TrimSpace(resp.Error.Message))
		}
		if resp.ListSets == nil {
			return nil, fmt.Errorf("ListSets response missing payload")
		}
		sets = append(sets, resp.ListSets.Sets...)

		token := strings.TrimSpace(resp.ListSets.ResumptionToken.Value)
		if token == "" {
			break
		}
		c.sleep(ctx)
		resp, err = c.request(ctx, url.Values{"verb": {"ListSets"}, "resumptionToken": {token}})
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("Set discovery finished", "base_url", c.BaseURL, "total_sets", len(sets))
	return sets, nil
}

// HarvestOptions narrows a ListRecords harvest.
type HarvestOptions struct {
	Sets      []string // setSpec filters; empty = harvest without a set filter
	FromDate  string   // YYYY-MM-DD, inclusive
	UntilDate string   // YYYY-MM-DD, inclusive
}

// ListRecords harvests Dublin Core records matching opts, following
// resumption tokens. A noRecordsMatch answer for a set yields no records
// for that set and is not an error.
func (c *Client) ListRecords(ctx context.Context, opts HarvestOptions) ([]Record, error) {
	sets := opts.Sets
	if len(sets) == 0 {
		sets = []string{""}
	}

	var all []Record
	for _, set := range sets {
		params := url.Values{
			"verb":           {"ListRecords"},
			"metadataPrefix": {metadataPrefix},
		}
		if set != "" {
			params.Set("set", set)
		}
		if opts.FromDate != "" {
			params.Set("from", opts.FromDate)
		}
		if opts.UntilDate != "" {
			params.Set("until", opts.UntilDate)
		}

		slog.Info("Harvesting records",
			"set", orPlaceholder(set, "(all)"),
			"from", orPlaceholder(opts.FromDate, "(any)"),
			"until", orPlaceholder(opts.UntilDate, "(any)"))

		records, err := c.listRecordsPage(ctx, params, set)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
		c.sleep(ctx)
	}

	slog.Info("Harvest finished", "base_url", c.BaseURL, "total_records", len(all))
	return all, nil
}

// listRecordsPage runs one ListRecords request chain (initial request
// plus resumption-token pages) for a single set.
func (c *Client) listRecordsPage(ctx context.Context, params url.Values, set string) ([]Record, error) {
	resp, err := c.request(ctx, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	page := 1
	for {
		if resp.Error != nil {
			if resp.Error.Code == "noRecordsMatch" {
				slog.Info("No records match", "set", orPlaceholder(set, "(all)"))
				return records, nil
			}
			slog.Warn("OAI-PMH error", "code", resp.Error.Code, "message", strings.TrimSpace(resp.Error.Message))
			return records, nil
		}
		if resp.ListRecords == nil {
			return nil, fmt.Errorf("ListRecords response missing payload")
		}
		records = append(records, resp.ListRecords.Records...)

		token := strings.TrimSpace(resp.ListRecords.ResumptionToken.Value)
		if token == "" {
			break
		}
		page++
		slog.Debug("Fetching next page", "page", page, "records_so_far", len(records))
		c.sleep(ctx)
		resp, err = c.request(ctx, url.Values{"verb": {"ListRecords"}, "resumptionToken": {token}})
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

// request performs one OAI-PMH GET with retry and decodes the envelope.
func (c *Client) request(ctx context.Context, params url.Values) (*Response, error) {
	requestURL := c.BaseURL + "?" + params.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, err := c.do(ctx, requestURL)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt < maxRetries {
			wait := retryBackoffBase * time.Duration(1<<(attempt-1))
			slog.Warn("OAI request failed, retrying",
				"attempt", attempt, "max_retries", maxRetries, "wait", wait, "error", err)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("OAI request failed after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, requestURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach repository: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("repository returned status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp Response
	if err := xml.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode OAI-PMH response: %w", err)
	}
	return &resp, nil
}

func (c *Client) sleep(ctx context.Context) {
	if c.RequestDelay <= 0 {
		return
	}
	select {
	case <-time.After(c.RequestDelay):
	case <-ctx.Done():
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
