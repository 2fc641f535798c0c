// Package identitytest provides a testify mock of identity.Provider.
package identitytest

import (
	"context"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock type for identity.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*firebaseauth.Token), args.Error(1)
}

func (m *MockProvider) GetUser(ctx context.Context, uid string) (*firebaseauth.UserRecord, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*firebaseauth.UserRecord), args.Error(1)
}

func (m *MockProvider) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

// Token builds a decoded token the way the provider returns it for a signed-in user.
func Token(uid, email, name string) *firebaseauth.Token {
	return &firebaseauth.Token{
		UID: uid,
		Claims: map[string]interface{}{
			"email":   email,
			"name":    name,
			"picture": "https://example.com/" + uid + ".png",
		},
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: "google.com"},
	}
}
