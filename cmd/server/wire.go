// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"caffind_backend/internal/app"
	"caffind_backend/internal/auth"
	"caffind_backend/internal/chat"
	"caffind_backend/internal/config"
	"caffind_backend/internal/firebase"
	"caffind_backend/internal/identity"
	"caffind_backend/internal/platform/metrics"
	"caffind_backend/internal/translation"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

var identitySet = wire.NewSet(
	firebase.NewFirebaseService,
	wire.Bind(new(identity.Provider), new(*firebase.FirebaseService)),
	identity.NewVerifier,
	identity.NewService,
)

var translationSet = wire.NewSet(
	provideGoogleEngine,
	wire.Bind(new(translation.Engine), new(*translation.GoogleEngine)),
	translation.NewService,
)

// initializeServer is the main Wire injector.
func initializeServer(ctx context.Context, cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,
		provideRegistry,
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
		provideMetrics,

		// External services
		identitySet,
		translationSet,
		chat.NewInferenceClient,
		wire.Bind(new(chat.Completer), new(*chat.InferenceClient)),
		chat.NewService,

		// Handlers
		auth.NewHandler,
		translation.NewHandler,
		chat.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}

// initializeTranslator builds the translation service for one-shot CLI use.
func initializeTranslator(ctx context.Context, cfg *config.Config) (*translation.Service, func(), error) {
	wire.Build(
		provideLogger,
		wire.InterfaceValue(new(metrics.Metrics), metrics.Noop{}),
		translationSet,
	)
	return nil, nil, nil
}

// initializeIdentity builds the identity service for one-shot CLI use.
func initializeIdentity(cfg *config.Config) (*identity.Service, func(), error) {
	wire.Build(
		provideLogger,
		wire.InterfaceValue(new(metrics.Metrics), metrics.Noop{}),
		identitySet,
	)
	return nil, nil, nil
}
