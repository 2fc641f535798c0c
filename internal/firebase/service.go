package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"caffind_backend/internal/config"
	"caffind_backend/internal/identity"
)

// FirebaseService is the identity.Provider backed by the Firebase Admin SDK.
type FirebaseService struct {
	authClient   *auth.Client
	checkRevoked bool
	logger       *zap.Logger
}

// NewFirebaseService initializes the Firebase Admin SDK and creates a new FirebaseService.
// Without a service account key path the SDK falls back to Application Default Credentials.
func NewFirebaseService(cfg *config.Config, logger *zap.Logger) (*FirebaseService, error) {
	logger = logger.Named("Firebase")

	var opts []option.ClientOption
	if cfg.FirebaseServiceAccountKeyPath != "" {
		cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
		opts = append(opts, option.WithCredentialsFile(cleanPath))
	} else {
		logger.Info("No Firebase service account key configured, using default credentials.")
	}

	var conf *firebase.Config
	if cfg.FirebaseProjectID != "" {
		conf = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(context.Background(), conf, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.", zap.Bool("checkRevoked", cfg.AuthCheckRevoked))
	return &FirebaseService{
		authClient:   authClient,
		checkRevoked: cfg.AuthCheckRevoked,
		logger:       logger,
	}, nil
}

// VerifyIDToken verifies a Firebase ID token and returns the decoded token.
func (s *FirebaseService) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if idToken == "" {
		return nil, identity.ErrTokenMissing
	}

	var token *auth.Token
	var err error
	if s.checkRevoked {
		token, err = s.authClient.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	} else {
		token, err = s.authClient.VerifyIDToken(ctx, idToken)
	}
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return token, nil
}

// GetUser looks up the user record for uid.
func (s *FirebaseService) GetUser(ctx context.Context, uid string) (*auth.UserRecord, error) {
	rec, err := s.authClient.GetUser(ctx, uid)
	if err != nil {
		return nil, classifyUserError(err)
	}
	return rec, nil
}

// DeleteUser removes the user record for uid.
func (s *FirebaseService) DeleteUser(ctx context.Context, uid string) error {
	if err := s.authClient.DeleteUser(ctx, uid); err != nil {
		return classifyUserError(err)
	}
	return nil
}

// classifyTokenError wraps SDK token errors with identity sentinels.
// Anything unrecognised is returned untouched so its message reaches the caller.
func classifyTokenError(err error) error {
	switch {
	case auth.IsIDTokenExpired(err):
		return fmt.Errorf("%w: %v", identity.ErrTokenExpired, err)
	case auth.IsIDTokenRevoked(err), auth.IsIDTokenInvalid(err):
		return fmt.Errorf("%w: %v", identity.ErrTokenInvalid, err)
	default:
		return err
	}
}

func classifyUserError(err error) error {
	if auth.IsUserNotFound(err) {
		return fmt.Errorf("%w: %v", identity.ErrUserNotFound, err)
	}
	return err
}
