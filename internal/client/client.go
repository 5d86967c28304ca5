// Package client provides a typed client for the counters administration API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/counters-admin/internal/config"
	"github.com/and161185/counters-admin/internal/errs"
	"github.com/and161185/counters-admin/model"
	"github.com/go-resty/resty/v2"
)

const countersPath = "/metrics/counters"

// PageQuery selects a page of the listing. A nil query requests the whole list.
// A zero Size leaves the page size to the server.
type PageQuery struct {
	Page int
	Size int
}

// Client talks to the counters API. Transport errors and 5xx responses are
// retried up to the configured retry count.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the server named in cfg.
func NewClient(cfg *config.ClientConfig) *Client {
	rc := resty.New().
		SetBaseURL(cfg.ServerAddr).
		SetTimeout(time.Duration(cfg.ClientTimeout)*time.Second).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})
	return &Client{http: rc}
}

// ListCounters returns a page of counter names ranked by value.
func (c *Client) ListCounters(ctx context.Context, q *PageQuery) (model.PagedResources[model.MetricResource], error) {
	return list[model.MetricResource](ctx, c, q, false)
}

// ListCountersDetailed returns a page of counters with their values.
func (c *Client) ListCountersDetailed(ctx context.Context, q *PageQuery) (model.PagedResources[model.CounterResource], error) {
	return list[model.CounterResource](ctx, c, q, true)
}

func list[R any](ctx context.Context, c *Client, q *PageQuery, detailed bool) (model.PagedResources[R], error) {
	var out model.PagedResources[R]

	req := c.http.R().SetContext(ctx).SetResult(&out)
	if detailed {
		req.SetQueryParam("detailed", "true")
	}
	if q != nil {
		req.SetQueryParam("page", strconv.Itoa(q.Page))
		if q.Size != 0 {
			req.SetQueryParam("size", strconv.Itoa(q.Size))
		}
	}

	if err := checkResponse(req.Get(countersPath)); err != nil {
		return model.PagedResources[R]{}, fmt.Errorf("list counters: %w", err)
	}
	return out, nil
}

// Counter returns one counter with its value.
func (c *Client) Counter(ctx context.Context, name string) (model.CounterResource, error) {
	var out model.CounterResource

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&out).
		Get(countersPath + "/{name}")
	if err := checkResponse(resp, err); err != nil {
		return model.CounterResource{}, fmt.Errorf("get counter %q: %w", name, err)
	}
	return out, nil
}

// DeleteCounter resets the named counter.
func (c *Client) DeleteCounter(ctx context.Context, name string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Delete(countersPath + "/{name}")
	if err := checkResponse(resp, err); err != nil {
		return fmt.Errorf("delete counter %q: %w", name, err)
	}
	return nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return errs.ErrMetricNotFound
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, strings.TrimSpace(resp.String()))
	case code < 200 || code >= 300:
		return fmt.Errorf("unexpected status %d: %s", code, strings.TrimSpace(resp.String()))
	}
	return nil
}
