package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/common"
	"github.com/antab/antabcli/internal/logging"
	"github.com/google/uuid"
)

// SessionSource is the slice of the session store the client needs: the
// current credential for the Authorization header, and teardown when the
// server signals expiry.
type SessionSource interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// envelope is the union of the backend's JSON response shapes. Endpoints
// fill different subsets; absent fields stay zero.
type envelope struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Token    string           `json:"token"`
	User     json.RawMessage  `json:"user"`
	Bookings []models.Booking `json:"bookings"`
	Rooms    []models.Room    `json:"rooms"`
	Users    []models.User    `json:"users"`
}

// ok reports the status marker the list endpoints use.
func (e *envelope) ok() bool { return e.Status == "ok" }

// HTTPClient implements Client against the live backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session SessionSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, session SessionSource, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// do performs one request and applies the shared response policy. It never
// returns a 401-with-expiry-marker response to the caller: that path clears
// the session in both scopes and yields common.ErrSessionExpired instead.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	token, err := c.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, common.ErrNetwork
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, common.ErrNetwork
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if res.StatusCode == http.StatusUnauthorized && strings.Contains(env.Message, common.ExpiredTokenMarker) {
		if clearErr := c.session.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear expired session", "error", clearErr)
		}
		return nil, common.ErrSessionExpired
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("Error %d", res.StatusCode)
		}
		return nil, &Error{Status: res.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		c.log.Warn(ctx, "undecodable response body", "method", method, "path", path, "error", decodeErr)
		return nil, common.ErrNetwork
	}

	return &env, nil
}

// statusError converts a 2xx response that is missing the status marker.
func statusError(env *envelope) error {
	return &Error{Status: http.StatusOK, Message: env.Message}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", nil, err
	}
	if env.Token == "" {
		return "", nil, statusError(env)
	}
	return env.Token, env.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, in RegisterInput) error {
	_, err := c.do(ctx, http.MethodPost, "/register", in)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

// Me fetches the profile. A 2xx response without a user object yields
// (nil, nil): the screen keeps whatever it already shows.
func (c *HTTPClient) Me(ctx context.Context) (json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, in ProfileInput) (json.RawMessage, error) {
	in.Fname = strings.TrimSpace(in.Fname)
	in.Lname = strings.TrimSpace(in.Lname)
	in.Phone = strings.TrimSpace(in.Phone)

	env, err := c.do(ctx, http.MethodPut, "/me", in)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) MyBookings(ctx context.Context) ([]models.Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/my-bookings", nil)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, statusError(env)
	}
	return env.Bookings, nil
}

func (c *HTTPClient) AdminBookings(ctx context.Context) ([]models.Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/bookings", nil)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, statusError(env)
	}
	return env.Bookings, nil
}

func (c *HTTPClient) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/bookings/%d/status", id), map[string]string{
		"status": status,
	})
	if err != nil {
		return err
	}
	if !env.ok() {
		return statusError(env)
	}
	return nil
}

func (c *HTTPClient) AdminRooms(ctx context.Context) ([]models.Room, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/rooms", nil)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, statusError(env)
	}
	return env.Rooms, nil
}

func (c *HTTPClient) CreateRoom(ctx context.Context, in models.RoomInput) error {
	in.Normalize()
	env, err := c.do(ctx, http.MethodPost, "/admin/rooms", in)
	if err != nil {
		return err
	}
	if !env.ok() {
		return statusError(env)
	}
	return nil
}

func (c *HTTPClient) UpdateRoom(ctx context.Context, id int64, in models.RoomInput) error {
	in.Normalize()
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/rooms/%d", id), in)
	if err != nil {
		return err
	}
	if !env.ok() {
		return statusError(env)
	}
	return nil
}

func (c *HTTPClient) DeleteRoom(ctx context.Context, id int64) error {
	env, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/rooms/%d", id), nil)
	if err != nil {
		return err
	}
	if !env.ok() {
		return statusError(env)
	}
	return nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, statusError(env)
	}
	return env.Users, nil
}
