package mocks

import (
	"context"
	"sync"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// --- UserInfoClient Mock ---

// UserInfoClient is a mock implementation of wiki.UserInfoClient.
type UserInfoClient struct {
	mu sync.RWMutex

	// Info is returned by FetchUserInfo when no error is injected.
	Info *model.WikiUserInfo

	// LastCredentials records the credentials of the most recent call.
	LastCredentials *model.WikiCredentials

	// Call tracking
	Calls struct {
		FetchUserInfo int
	}

	// Error injection
	Errors struct {
		FetchUserInfo error
	}
}

// NewUserInfoClient creates a new mock UserInfoClient.
func NewUserInfoClient() *UserInfoClient {
	return &UserInfoClient{}
}

func (m *UserInfoClient) FetchUserInfo(ctx context.Context, creds *model.WikiCredentials) (*model.WikiUserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.FetchUserInfo++
	m.LastCredentials = creds

	if m.Errors.FetchUserInfo != nil {
		return nil, m.Errors.FetchUserInfo
	}
	return m.Info, nil
}

// Reset clears all data and call counts.
func (m *UserInfoClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Info = nil
	m.LastCredentials = nil
	m.Calls = struct {
		FetchUserInfo int
	}{}
	m.Errors = struct {
		FetchUserInfo error
	}{}
}
