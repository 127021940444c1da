package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
)

// Collection names as the remote store knows them.
const (
	CollAccounts         = "accounts"
	CollCustomers        = "customers"
	CollCustomerAccounts = "customer_accounts"
	CollTransactions     = "transactions"
	CollCashPositions    = "cash_positions"
)

// Client talks to the remote store's REST API: row CRUD under /rest/v1 and
// auth under /auth/v1. Inserts never carry a client id; the server assigns
// one and the response row carries it back.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("apikey", apiKey).
			SetHeader("Content-Type", "application/json"),
	}
}

// SetToken installs the session access token used for authenticated calls.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	c.mu.RLock()
	if c.token != "" {
		r.SetHeader("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()
	return r
}

// Health probes reachability. The connectivity oracle is its only caller.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.request(ctx).Get("/auth/v1/health")
	if err != nil {
		return errs.NewRemoteUnavailableError("health probe: " + err.Error())
	}
	if resp.IsError() {
		return errs.NewRemoteUnavailableError(fmt.Sprintf("health probe status: %d", resp.StatusCode()))
	}
	return nil
}

// Select fetches rows from collection matching the equality filters, decoded
// into out (a pointer to a slice). Order is a column name, optionally
// descending.
func (c *Client) Select(ctx context.Context, collection string, filters map[string]string, order string, desc bool, out any) error {
	req := c.request(ctx).SetResult(out)
	for col, val := range filters {
		req.SetQueryParam(col, "eq."+val)
	}
	if order != "" {
		dir := ".asc"
		if desc {
			dir = ".desc"
		}
		req.SetQueryParam("order", order+dir)
	}

	resp, err := req.Get("/rest/v1/" + collection)
	if err != nil {
		return errs.NewRemoteUnavailableError("select " + collection + ": " + err.Error())
	}
	return c.checkStatus(collection, resp)
}

// Insert creates one row. The payload must not contain an identifier; the
// response row, decoded into out when non-nil, carries the server-assigned
// id and creation timestamp.
func (c *Client) Insert(ctx context.Context, collection string, payload any, out any) error {
	req := c.request(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(payload)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post("/rest/v1/" + collection)
	if err != nil {
		return errs.NewRemoteUnavailableError("insert " + collection + ": " + err.Error())
	}
	return c.checkStatus(collection, resp)
}

// Update applies a partial update to the row with the given id.
func (c *Client) Update(ctx context.Context, collection, id string, payload any, out any) error {
	req := c.request(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(payload)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Patch("/rest/v1/" + collection)
	if err != nil {
		return errs.NewRemoteUnavailableError("update " + collection + ": " + err.Error())
	}
	return c.checkStatus(collection, resp)
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	resp, err := c.request(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/" + collection)
	if err != nil {
		return errs.NewRemoteUnavailableError("delete " + collection + ": " + err.Error())
	}
	return c.checkStatus(collection, resp)
}

func (c *Client) checkStatus(operation string, resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 400:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return errs.NewUnauthorizedError(operation + ": " + resp.String())
	case resp.StatusCode() >= 500:
		return errs.NewRemoteUnavailableError(fmt.Sprintf("%s: status %d", operation, resp.StatusCode()))
	default:
		return errs.NewRemoteRejectedError(operation+": "+resp.String(), resp.StatusCode())
	}
}
