package identity_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"caffind_backend/internal/config"
	"caffind_backend/internal/identity"
	"caffind_backend/internal/identity/identitytest"
	"caffind_backend/internal/platform/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVerifier(p identity.Provider, strict bool) *identity.Verifier {
	return identity.NewVerifier(p, &config.Config{AuthStrictBearer: strict}, metrics.Noop{}, zap.NewNop())
}

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		strict  bool
		want    string
		wantErr error
	}{
		{name: "bearer prefix", header: "Bearer abc.def", want: "abc.def"},
		{name: "raw token lenient", header: "abc.def", want: "abc.def"},
		{name: "lowercase prefix is part of token", header: "bearer abc", want: "bearer abc"},
		{name: "empty header", header: "", wantErr: identity.ErrTokenMissing},
		{name: "prefix only", header: "Bearer ", wantErr: identity.ErrTokenMissing},
		{name: "raw token strict", header: "abc.def", strict: true, wantErr: identity.ErrTokenInvalid},
		{name: "bearer strict", header: "Bearer abc", strict: true, want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identity.TokenFromHeader(tt.header, tt.strict)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, identity.StatusValid, identity.Classify(nil))
	assert.Equal(t, identity.StatusExpired, identity.Classify(fmt.Errorf("%w: exp", identity.ErrTokenExpired)))
	assert.Equal(t, identity.StatusInvalid, identity.Classify(fmt.Errorf("%w: sig", identity.ErrTokenInvalid)))
	assert.Equal(t, identity.StatusMissing, identity.Classify(identity.ErrTokenMissing))
	assert.Equal(t, identity.StatusProviderError, identity.Classify(errors.New("network down")))
}

func TestVerifier_VerifyHeader(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token yields claims", func(t *testing.T) {
		p := new(identitytest.MockProvider)
		p.On("VerifyIDToken", mock.Anything, "good").Return(identitytest.Token("uid-1", "a@b.c", "Ann"), nil)

		res := newVerifier(p, false).VerifyHeader(ctx, "Bearer good")

		require.True(t, res.Valid())
		assert.Equal(t, "uid-1", res.Claims.UID)
		assert.Equal(t, "a@b.c", res.Claims.Email)
		assert.Equal(t, "Ann", res.Claims.DisplayName)
		assert.Equal(t, "google.com", res.Claims.ProviderID)
		assert.Empty(t, res.Reason())
		p.AssertExpectations(t)
	})

	t.Run("missing header never calls provider", func(t *testing.T) {
		p := new(identitytest.MockProvider)

		res := newVerifier(p, false).VerifyHeader(ctx, "")

		assert.Equal(t, identity.StatusMissing, res.Status)
		assert.Equal(t, identity.ReasonMissing, res.Reason())
		p.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
	})

	reasons := []struct {
		name       string
		err        error
		wantStatus identity.Status
		wantReason string
	}{
		{"invalid", fmt.Errorf("%w: bad signature", identity.ErrTokenInvalid), identity.StatusInvalid, identity.ReasonInvalid},
		{"expired", fmt.Errorf("%w: exp in past", identity.ErrTokenExpired), identity.StatusExpired, identity.ReasonExpired},
		{"provider error", errors.New("project id mismatch"), identity.StatusProviderError, "project id mismatch"},
	}
	for _, tt := range reasons {
		t.Run(tt.name, func(t *testing.T) {
			p := new(identitytest.MockProvider)
			p.On("VerifyIDToken", mock.Anything, "tok").Return(nil, tt.err)

			res := newVerifier(p, false).VerifyHeader(ctx, "tok")

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantReason, res.Reason())
			assert.Nil(t, res.Claims)
		})
	}
}

func TestClaimsToIdentity_NullsEmptyFields(t *testing.T) {
	c := &identity.Claims{UID: "u"}
	id := c.ToIdentity()

	assert.Equal(t, "u", id.UID)
	assert.Nil(t, id.Email)
	assert.Nil(t, id.DisplayName)
	assert.Nil(t, id.PhotoURL)
	assert.Nil(t, id.ProviderID)
}
