package ycbm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"daybook/pkg/logger"
)

// bookingFields is the field-selection contract with the provider: exactly
// the attributes the normalizer consumes, nothing more.
const bookingFields = "id,startsAt,endsAt,createdAt,displayDurationFull,answers,answers.code,answers.string,cancelled,title"

const jumpToDateLayout = "2006-01-02"

// Client talks to the YouCanBook.me v1 API for a single booking profile.
type Client struct {
	baseURL    string
	accountID  string
	profileID  string
	username   string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(baseURL, accountID, profileID, username, apiKey string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		accountID: accountID,
		profileID: profileID,
		username:  username,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchBookings retrieves the profile's raw booking records. The day is
// passed along as the provider's jumpToDate hint to keep the payload small;
// callers must still filter, the hint carries no correctness guarantee.
func (c *Client) FetchBookings(ctx context.Context, day time.Time) ([]BookingDTO, error) {
	endpoint := fmt.Sprintf("%s/%s/profiles/%s/bookings", c.baseURL, c.accountID, c.profileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	query := url.Values{}
	query.Set("fields", bookingFields)
	query.Set("jumpToDate", day.Format(jumpToDateLayout))
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(c.username, c.apiKey)

	c.log.Debug("Fetching bookings from provider",
		"endpoint", endpoint,
		"jump_to_date", day.Format(jumpToDateLayout),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var bookings []BookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}

	c.log.Debug("Fetched bookings from provider", "count", len(bookings))

	return bookings, nil
}

// Ping checks that the provider accepts our credentials. Used by the
// readiness probe; the response body is discarded.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/%s/profiles/%s/bookings", c.baseURL, c.accountID, c.profileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	query := url.Values{}
	query.Set("fields", "id")
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(c.username, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
