// Package gitlab is a minimal GitLab v4 REST client covering the handful of
// calls the merge-request workflow needs. It is not a general API client.
package gitlab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wahlandcase/glmr/internal/models"
)

// HTTPClient interface for HTTP operations (allows mocking in tests)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one GitLab instance with a private token
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
}

// NewClient creates a client with the given connect/read timeout
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, token, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client with an injected transport
func NewClientWithHTTP(baseURL, token string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

// errNotFound marks a 404 inside do; callers wrap it with resource context
var errNotFound = errors.New("not found")

// Project looks up a project by its namespace/name path
func (c *Client) Project(path string) (*models.Project, error) {
	var project models.Project
	err := c.do(http.MethodGet, "/projects/"+url.PathEscape(path), nil, &project)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, &NotFoundError{Resource: "project", Name: path}
		}
		return nil, err
	}
	return &project, nil
}

// Branch looks up a branch of a project by name
func (c *Client) Branch(projectID int, name string) (*models.Branch, error) {
	var branch models.Branch
	path := fmt.Sprintf("/projects/%d/repository/branches/%s", projectID, url.PathEscape(name))
	if err := c.do(http.MethodGet, path, nil, &branch); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, &NotFoundError{Resource: "branch", Name: name}
		}
		return nil, err
	}
	return &branch, nil
}

// UserByUsername finds a user whose username matches exactly
func (c *Client) UserByUsername(username string) (*models.User, error) {
	var users []models.User
	path := "/users?username=" + url.QueryEscape(username)
	if err := c.do(http.MethodGet, path, nil, &users); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, &NotFoundError{Resource: "user", Name: username}
		}
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, &NotFoundError{Resource: "user", Name: username}
}

// CreateMergeRequest submits a merge request on the source project
func (c *Client) CreateMergeRequest(projectID int, payload models.MergeRequestPayload) (*models.MergeRequest, error) {
	var mr models.MergeRequest
	path := fmt.Sprintf("/projects/%d/merge_requests", projectID)
	if err := c.do(http.MethodPost, path, payload, &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// CommitStatuses lists the build/pipeline statuses attached to a commit
func (c *Client) CommitStatuses(projectID int, sha string) ([]models.CommitStatus, error) {
	var statuses []models.CommitStatus
	path := fmt.Sprintf("/projects/%d/repository/commits/%s/statuses", projectID, url.PathEscape(sha))
	if err := c.do(http.MethodGet, path, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// AcceptMergeRequest asks the server to merge an existing merge request
func (c *Client) AcceptMergeRequest(projectID, iid int, opts models.AcceptOptions) error {
	path := fmt.Sprintf("/projects/%d/merge_requests/%d/merge", projectID, iid)
	return c.do(http.MethodPut, path, opts, nil)
}

// do performs one API request. 404 maps to errNotFound, transport failures to
// ConnectionError, any other non-2xx to APIError with the body kept verbatim.
func (c *Client) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+"/api/v4"+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
