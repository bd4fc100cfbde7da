package gmailclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/hoteldesk/roomrota/internal/config"
)

// Client wraps the Gmail API for plan delivery
type Client struct {
	service      *gmail.Service
	sendMutex    sync.Mutex
	lastSendTime time.Time
}

// NewClient creates a Gmail client from the OAuth client configuration.
// The token must already exist at the configured path; obtaining one is an
// out-of-band setup step.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig) (*Client, error) {
	token, err := loadToken(oauthCfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load oauth token: %w", err)
	}

	conf := &oauth2.Config{
		ClientID:     oauthCfg.ClientID,
		ClientSecret: oauthCfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}

	service, err := gmail.NewService(ctx, option.WithHTTPClient(conf.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &Client{service: service}, nil
}

// loadToken reads a persisted OAuth token from disk
func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}

	return &token, nil
}
