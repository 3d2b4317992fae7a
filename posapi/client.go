package posapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/mmdatafocus/positnow_mobile/config"
	"github.com/mmdatafocus/positnow_mobile/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("positnow-mobile/posapi")

// Client talks to the two positnow hosts. It holds no session; every authenticated
// call takes the caller's Session explicitly.
type Client struct {
	catalogURL string
	accountURL string
	salesRefId int
	http       *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		catalogURL: cfg.CatalogBaseURL,
		accountURL: cfg.AccountBaseURL,
		salesRefId: cfg.SalesRefId,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) SalesRefId() int {
	return c.salesRefId
}

type call struct {
	op     string
	method string
	base   string
	path   string
	params url.Values
	body   any
	sess   *models.Session
}

// do runs one request and returns the raw 2xx body.
func (c *Client) do(ctx context.Context, req call) (body []byte, err error) {
	ctx, span := tracer.Start(ctx, "positnow."+req.op, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("http.method", req.method),
		attribute.String("positnow.path", req.path),
	)

	endpoint := req.base + req.path
	if len(req.params) > 0 {
		endpoint = endpoint + "?" + req.params.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		payload, mErr := json.Marshal(req.body)
		if mErr != nil {
			return nil, mErr
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.sess != nil {
		httpReq.Header.Set("Authorization", "Bearer "+req.sess.UpstreamToken)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Op: req.op, Err: err}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: req.op, Err: err}
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Op: req.op, StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return body, nil
}

// doJSON decodes the 2xx body into out.
func (c *Client) doJSON(ctx context.Context, req call, out any) error {
	body, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ParseError{Op: req.op, Err: err}
	}
	return nil
}

var errNoSession = errors.New("no session")

func requireSession(op string, sess *models.Session) error {
	if sess == nil || sess.UpstreamToken == "" {
		return &HTTPError{Op: op, StatusCode: http.StatusUnauthorized, Message: errNoSession.Error()}
	}
	return nil
}
