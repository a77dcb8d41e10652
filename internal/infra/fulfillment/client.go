// Package fulfillment talks to the print-on-demand provider's REST API and authenticates its webhooks.
package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/pkg/money"
	"storefront/internal/pkg/tracing"
	"storefront/internal/usecase/commands"

	"go.opentelemetry.io/otel/attribute"
)

const (
	giftSubject      = "A gift for you"
	maxErrorBodySize = 4 << 10
)

// Client is the provider's order API. Orders are created with confirm=true so they go straight to production.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	storeID    string
}

func NewClient(cfg config.PrintfulConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		storeID:    cfg.StoreID,
	}
}

func (c *Client) CreateOrder(ctx context.Context, req commands.FulfillmentOrderRequest) (fo *commands.FulfillmentOrder, err error) {
	ctx, span := tracing.StartSpan(ctx, "fulfillment.create_order")
	defer span.End()
	span.SetAttributes(attribute.String("fulfillment.external_id", req.ExternalID))
	defer func() { metrics.FulfillmentRequestsTotal.WithLabelValues("create", metrics.Result(err)).Inc() }()

	body := createOrderJSON{
		ExternalID: req.ExternalID,
		Recipient: recipientJSON{
			Name:        req.Recipient.Name,
			Address1:    req.Recipient.Address.Line1,
			Address2:    req.Recipient.Address.Line2,
			City:        req.Recipient.Address.City,
			StateCode:   req.Recipient.Address.State,
			CountryCode: req.Recipient.Address.Country,
			Zip:         req.Recipient.Address.PostalCode,
			Email:       req.Recipient.Email,
		},
		Items: make([]itemJSON, 0, len(req.Items)),
		RetailCosts: retailCostsJSON{
			Currency: "USD",
			Subtotal: money.Amount(req.RetailCosts.Subtotal),
			Discount: money.Amount(req.RetailCosts.Discount),
			Shipping: money.Amount(req.RetailCosts.Shipping),
			Total:    money.Amount(req.RetailCosts.Total),
		},
	}
	for _, li := range req.Items {
		body.Items = append(body.Items, itemJSON{
			SyncVariantID: li.VariantID,
			Quantity:      li.Quantity,
			Name:          li.Name,
			RetailPrice:   money.Amount(li.UnitPrice),
		})
	}
	if req.GiftMessage != nil && *req.GiftMessage != "" {
		body.Gift = &giftJSON{Subject: giftSubject, Message: *req.GiftMessage}
	}

	var out orderJSON
	if err := c.do(ctx, http.MethodPost, "/orders?confirm=true", body, &out); err != nil {
		return nil, errs.Wrapf(err, "create fulfillment order for %s", req.ExternalID)
	}
	if out.ID == "" {
		return nil, errs.Newf("create fulfillment order for %s: response has no order id", req.ExternalID)
	}
	return &commands.FulfillmentOrder{ID: string(out.ID), Status: out.Status, Shipments: shipmentsOf(out)}, nil
}

func (c *Client) GetOrder(ctx context.Context, fulfillmentOrderID string) (fo *commands.FulfillmentOrder, err error) {
	ctx, span := tracing.StartSpan(ctx, "fulfillment.get_order")
	defer span.End()
	span.SetAttributes(attribute.String("fulfillment.order_id", fulfillmentOrderID))
	defer func() { metrics.FulfillmentRequestsTotal.WithLabelValues("get", metrics.Result(err)).Inc() }()

	var out orderJSON
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(fulfillmentOrderID), nil, &out); err != nil {
		return nil, errs.Wrapf(err, "get fulfillment order %s", fulfillmentOrderID)
	}
	return &commands.FulfillmentOrder{ID: string(out.ID), Status: out.Status, Shipments: shipmentsOf(out)}, nil
}

// do sends one request and decodes the "result" member of the provider's response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.storeID != "" {
		req.Header.Set("X-PF-Store-Id", c.storeID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return providerError(resp)
	}

	var env envelopeJSON
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errs.Wrap(err, "decode response")
	}
	if len(env.Result) == 0 {
		return errs.New("response has no result")
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return errs.Wrap(err, "decode result")
	}
	return nil
}

func providerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	var env envelopeJSON
	if json.Unmarshal(raw, &env) == nil {
		if env.Error != nil && env.Error.Message != "" {
			return errs.Newf("provider responded with %s: %s", resp.Status, env.Error.Message)
		}
		var msg string
		if json.Unmarshal(env.Result, &msg) == nil && msg != "" {
			return errs.Newf("provider responded with %s: %s", resp.Status, msg)
		}
	}
	return errs.Newf("provider responded with %s", resp.Status)
}
