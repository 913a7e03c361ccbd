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

	"github.com/mpetrovs/newsbrief/internal/client/models"
	"github.com/mpetrovs/newsbrief/internal/common"
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL. A zero timeout
// means no client-side timeout, matching the original application.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// msgResponse is the success shape of all plain-acknowledgement endpoints.
type msgResponse struct {
	Msg string `json:"msg"`
}

// errResponse is the error shape; the "error" field is optional per the wire
// contract.
type errResponse struct {
	Error string `json:"error"`
}

// do issues a request and decodes the 2xx body into out (when out != nil).
// Non-2xx responses become *Error with the extracted message; transport
// failures wrap ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return &Error{StatusCode: resp.StatusCode, Message: er.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodPost, "/api/users/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &res)
	return res.Msg, err
}

func (c *HTTPClient) VerifySignupOTP(ctx context.Context, email, otp string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodPost, "/api/users/verify", "", map[string]string{
		"email": email,
		"otp":   otp,
	}, &res)
	return res.Msg, err
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodPost, "/api/users/forgot-password", "", map[string]string{
		"email": email,
	}, &res)
	return res.Msg, err
}

func (c *HTTPClient) VerifyResetOTP(ctx context.Context, email, otp string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodPost, "/api/users/verify-reset-otp", "", map[string]string{
		"email": email,
		"otp":   otp,
	}, &res)
	return res.Msg, err
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, password string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodPost, "/api/users/reset-password", "", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	return res.Msg, err
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token, name string) (*models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPut, "/api/users/update", token, map[string]string{
		"name": name,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, token string) (string, error) {
	var res msgResponse
	err := c.do(ctx, http.MethodDelete, "/api/users/delete", token, nil, &res)
	return res.Msg, err
}

func (c *HTTPClient) AvatarUploadURL(ctx context.Context, token string) (string, string, error) {
	var res struct {
		UploadURL string `json:"uploadUrl"`
		PublicURL string `json:"publicUrl"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users/avatar-upload-url", token, nil, &res)
	if err != nil {
		return "", "", err
	}
	return res.UploadURL, res.PublicURL, nil
}

func (c *HTTPClient) Newsletters(ctx context.Context) ([]models.Newsletter, error) {
	var list []models.Newsletter
	if err := c.do(ctx, http.MethodGet, "/api/newsletters", "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
