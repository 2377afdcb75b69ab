package adminsession

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CheckResult is the session-check payload. A nil *CheckResult from
// API.CheckSession means "no session", which is a normal outcome, not an
// error.
type CheckResult struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	IsAdmin       bool   `json:"isAdmin"`
	UserID        int64  `json:"userId"`
	Username      string `json:"username"`
}

// API is the remote side of the controller.
type API interface {
	CheckSession(ctx context.Context) (*CheckResult, error)
	Logout(ctx context.Context) error
}

// HTTPAPI talks to the admin endpoints over REST. The http.Client must
// carry a cookie jar; the session cookie is the credential.
type HTTPAPI struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPAPI(baseURL string, client *http.Client) *HTTPAPI {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPAPI{BaseURL: baseURL, Client: client}
}

func (a *HTTPAPI) CheckSession(ctx context.Context) (*CheckResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/api/admin/session", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// An unauthorized response is the "no session" signal.
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session check: unexpected status %d", resp.StatusCode)
	}

	var out CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.Authenticated {
		return nil, nil
	}
	return &out, nil
}

func (a *HTTPAPI) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/admin/logout", nil)
	if err != nil {
		return err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout: unexpected status %d", resp.StatusCode)
	}
	return nil
}
