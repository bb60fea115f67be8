package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/internal/logging"
)

// ListEnvelope is the {data, pagination} shape every REST list response
// uses. T is instantiated per resource (model.Space, model.Object, ...)
// by the repository that decodes the response.
type ListEnvelope[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total   int  `json:"total"`
		Offset  int  `json:"offset"`
		Limit   int  `json:"limit"`
		HasMore bool `json:"has_more"`
	} `json:"pagination"`
}

// apiErrorBody is the {code, message} shape a non-2xx REST response
// carries.
type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RESTChannel is the single, connection-pooled, keep-alive REST client
// used by every entity repository. It acquires a fresh bearer token
// snapshot from the keystore on every request rather than caching one at
// construction time, so a token rotated mid-session (refresh, re-login)
// takes effect on the very next call.
type RESTChannel struct {
	client *resty.Client
	ks     KeyStore
}

// NewRESTChannel builds a RESTChannel against cfg.RESTBaseURL, attaching
// a bearer token from ks on every outbound request.
func NewRESTChannel(cfg Config, ks KeyStore) *RESTChannel {
	c := resty.New().
		SetBaseURL(cfg.RESTBaseURL).
		SetTimeout(cfg.Timeout).
		SetTransport(&http.Transport{
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			ForceAttemptHTTP2:   true,
		})

	ch := &RESTChannel{client: c, ks: ks}

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		token, err := ks.Load(req.Context())
		if err != nil {
			return err
		}
		req.SetAuthToken(token)
		return nil
	})

	return ch
}

// Request starts a new resty request already bound to this channel's
// context-aware token attachment.
func (c *RESTChannel) Request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// CheckResponse classifies a completed resty response into the shared
// error taxonomy: nil on 2xx, *errs.Error{Kind: NotFound} on a 404,
// *errs.Error{Kind: APIError} carrying the body's code on a structured
// {code,message} body or the HTTP status code otherwise, and
// *errs.Error{Kind: Http} when the request failed before a response.
// An *errs.Error raised by the token hook (a keystore failure) is
// returned with its own kind.
func CheckResponse(resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		if e, ok := errs.As(err); ok {
			return resp, e
		}
		return resp, errs.Wrap(errs.KindHTTP, "rest request failed", err)
	}
	if resp.IsSuccess() {
		return resp, nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		logging.Log.WithFields(map[string]any{
			"status": resp.StatusCode(),
		}).Debug("rest: not found")
		// ObjType/Key are unknown at this layer; callers that know which
		// resource and key they asked for enrich this via errs.NotFoundAs.
		return resp, errs.NotFound("", "")
	}

	var body apiErrorBody
	if uerr := json.Unmarshal(resp.Body(), &body); uerr == nil && body.Message != "" {
		logging.Log.WithFields(map[string]any{
			"status": resp.StatusCode(), "code": body.Code,
		}).Debug("rest: api error")
		return resp, errs.APIError(body.Code, body.Message)
	}
	return resp, errs.APIError(resp.StatusCode(), resp.Status())
}
