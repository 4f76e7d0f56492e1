// Package mediawiki implements the wiki.UserInfoClient port against a
// MediaWiki-compatible Action API, authenticated with OAuth 1.0a.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/wikilink/internal/domain/error"
	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/wiki"
)

// apiPath is the fixed API sub-path convention for MediaWiki installs.
const apiPath = "/w/api.php"

// ClientConfig holds configuration for the MediaWiki client.
type ClientConfig struct {
	// BaseURL is the wiki's base URL; only its network location is used.
	BaseURL string

	// ConsumerKey and ConsumerSecret identify this integration to the
	// wiki, distinct from the per-user access pair.
	ConsumerKey    string
	ConsumerSecret string

	// Timeout bounds the single round trip. Zero means no timeout.
	Timeout time.Duration
}

type client struct {
	apiURL  string
	config  *oauth1.Config
	timeout time.Duration
}

// NewClient creates a new UserInfoClient.
func NewClient(cfg ClientConfig) (wiki.UserInfoClient, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid wiki base URL: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("wiki base URL %q has no host", cfg.BaseURL)
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = "https"
	}

	return &client{
		apiURL:  scheme + "://" + parsed.Host + apiPath,
		config:  oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret),
		timeout: cfg.Timeout,
	}, nil
}

// userInfoResponse is the wire shape of the userinfo query result
// (formatversion=2).
type userInfoResponse struct {
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
	Query struct {
		UserInfo struct {
			ID     int64    `json:"id"`
			Name   string   `json:"name"`
			Email  string   `json:"email"`
			Groups []string `json:"groups"`
			Rights []string `json:"rights"`
		} `json:"userinfo"`
	} `json:"query"`
}

func (c *client) FetchUserInfo(ctx context.Context, creds *model.WikiCredentials) (*model.WikiUserInfo, error) {
	token := oauth1.NewToken(creds.AccessKey(), creds.AccessSecret())
	httpClient := c.config.Client(ctx, token)
	httpClient.Timeout = c.timeout

	params := url.Values{
		"action":        {"query"},
		"meta":          {"userinfo"},
		"uiprop":        {"email|groups|rights"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, remoteErrorf("failed to build userinfo request: %v", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, remoteErrorf("userinfo request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteErrorf("userinfo request returned status %d", resp.StatusCode)
	}

	var payload userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, remoteErrorf("failed to decode userinfo response: %v", err)
	}

	if payload.Error != nil {
		return nil, remoteErrorf("wiki API error %s: %s", payload.Error.Code, payload.Error.Info)
	}

	info := payload.Query.UserInfo

	email := types.None[string]()
	if info.Email != "" {
		email = types.Some(info.Email)
	}

	// Only the count of rights travels downstream; the full list stays here.
	return model.NewWikiUserInfo(info.ID, info.Name, email, info.Groups, len(info.Rights)), nil
}

// remoteErrorf wraps a failure as ErrWikiRemote with a readable message.
// Credential material must never end up in the message.
func remoteErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainerror.ErrWikiRemote, fmt.Sprintf(format, args...))
}
