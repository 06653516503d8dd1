package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
)

// envelope is the JSON wrapper every backend response uses. Callers of the
// client never see it: data is unwrapped and failures become errors.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}

type Pagination struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
}

// Client is a typed wrapper over the HR notice REST API. Every operation is
// a single attempt: no retries, no backoff. The caller decides whether to
// surface the error or re-issue the call.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{http: c}
}

// call executes the request, decodes the envelope and unmarshals data into
// out when given. A missing response is a TransportError; anything the
// backend rejected is a RequestError carrying the server's message.
func (c *Client) call(ctx context.Context, req *resty.Request, method, path string, out any) (*Pagination, error) {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &RequestError{Message: genericErrorMessage}
	}

	if !resp.IsSuccess() || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = genericErrorMessage
		}
		return nil, &RequestError{Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &RequestError{Message: genericErrorMessage}
		}
	}

	return env.Pagination, nil
}
