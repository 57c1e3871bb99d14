package bookingapi

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"flightbooking/internal/domain"
	"flightbooking/internal/domain/models"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	SearchBookingPath = "/api/search_booking"

	defaultMaxBodyBytes = 64 << 20
)

// Client reads the booking list from a booking-search endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseUrl    string
	timeout    time.Duration
	maxBody    int64
	group      singleflight.Group
}

type ClientOption func(c *Client)

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithBaseUrl(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

// WithTimeout bounds one request to the endpoint.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMaxBodyBytes caps the size of an accepted response body.
func WithMaxBodyBytes(n int64) ClientOption {
	return func(c *Client) {
		c.maxBody = n
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = cmp.Or(c.httpClient, http.DefaultClient)
	c.baseUrl = cmp.Or(c.baseUrl, "http://127.0.0.1:8080")
	c.timeout = cmp.Or(c.timeout, 10*time.Second)
	c.maxBody = cmp.Or(c.maxBody, defaultMaxBodyBytes)
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return c
}

// SearchBookings issues GET /api/search_booking and returns the decoded list.
// Concurrent callers share one request; a caller whose ctx ends stops waiting
// without aborting the shared request.
func (c *Client) SearchBookings(ctx context.Context) ([]models.BookingRecord, error) {
	ch := c.group.DoChan(SearchBookingPath, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared := res.Val.([]models.BookingRecord)
		return append([]models.BookingRecord(nil), shared...), nil
	}
}

func (c *Client) fetch(ctx context.Context) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseUrl + SearchBookingPath

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NetworkError{Op: "search bookings", URL: url, Err: fmt.Errorf("rate limit: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NetworkError{Op: "search bookings", URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NetworkError{Op: "search bookings", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, domain.NetworkError{Op: "search bookings", URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, domain.NetworkError{Op: "search bookings", URL: url, Err: err}
	}
	if int64(len(body)) > c.maxBody {
		return nil, domain.MalformedResponseError{Details: []string{fmt.Sprintf("response body exceeds %d bytes", c.maxBody)}}
	}

	return decodeBookings(body)
}

// decodeBookings validates body against the booking list schema before decoding it.
func decodeBookings(body []byte) ([]models.BookingRecord, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, domain.InternalError{Msg: "booking list schema", Err: err}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, domain.MalformedResponseError{Err: err}
	}
	if !result.Valid() {
		return nil, domain.MalformedResponseError{Details: schemaDetails(result.Errors())}
	}

	records := []models.BookingRecord{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, domain.MalformedResponseError{Err: err}
	}
	return records, nil
}

func schemaDetails(errs []gojsonschema.ResultError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}
	return out
}
