package transport

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/anytype-sdk/anytype-go/errs"
)

// SessionSource names which credential a session was minted from, kept
// on the client for diagnostics and for deciding whether RefreshToken
// can later re-mint a session without the original credential.
type SessionSource int

const (
	SourceAccountKey SessionSource = iota
	SourceAppKey
	SourceMnemonic
	SourceRefreshToken
)

func (s SessionSource) String() string {
	switch s {
	case SourceAccountKey:
		return "account_key"
	case SourceAppKey:
		return "app_key"
	case SourceMnemonic:
		return "mnemonic"
	case SourceRefreshToken:
		return "refresh_token"
	default:
		return "unknown"
	}
}

// Session is the result of minting: a bearer token plus the refresh
// token needed to mint a new one once the bearer expires.
type Session struct {
	Token        string
	RefreshToken string
	Source       SessionSource
}

type mintRequest struct {
	AccountKey   string `json:"account_key,omitempty"`
	AppKey       string `json:"app_key,omitempty"`
	Mnemonic     string `json:"mnemonic,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type mintResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// MintSession exchanges exactly one of the four credential kinds for a
// Session by POSTing to the server's session endpoint at ch's base URL.
// Callers are expected to pick the SessionSource matching whichever
// credential argument is non-empty; mixing more than one is a caller error, not
// something this function guards against, since the server is the
// authority on precedence.
func MintSession(ctx context.Context, ch *RESTChannel, source SessionSource, accountKey, appKey, mnemonic, refreshToken string) (Session, error) {
	req := mintRequest{
		AccountKey:   accountKey,
		AppKey:       appKey,
		Mnemonic:     mnemonic,
		RefreshToken: refreshToken,
	}

	// Minting is how the first token is obtained, so the request goes out
	// on a client without ch's bearer-token hook, which fails when the
	// keystore is empty.
	mint := resty.New().
		SetBaseURL(ch.client.BaseURL).
		SetTimeout(ch.client.GetClient().Timeout)
	resp, err := mint.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&mintResponse{}).
		Post("/v1/auth/session")
	resp, err = CheckResponse(resp, err)
	if err != nil {
		return Session{}, errs.Wrap(errs.KindAuth, "mint session", err)
	}

	var body mintResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return Session{}, errs.Wrap(errs.KindAuth, "decode session response", err)
	}
	if body.Token == "" {
		return Session{}, errs.New(errs.KindAuth, "server returned an empty session token")
	}

	return Session{Token: body.Token, RefreshToken: body.RefreshToken, Source: source}, nil
}
