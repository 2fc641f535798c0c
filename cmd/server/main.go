// File: cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log" // Standard log for startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"strings"
	"syscall"

	"caffind_backend/internal/common"
	"caffind_backend/internal/config"
	"caffind_backend/internal/translation"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "caffind",
		Short: "Caffind translation, identity and chat API",
		Long: `Caffind serves three thin endpoints backed by external services:
translation (Google Cloud Translation), identity (Firebase Auth) and
chat (an OpenAI-compatible inference endpoint).

Running without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newTranslateCmd(), newVerifyTokenCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func newTranslateCmd() *cobra.Command {
	var text, target, source string
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate one text and print the JSON response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			svc, cleanup, err := initializeTranslator(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize translator: %w", err)
			}
			defer cleanup()

			req := translation.TranslateRequest{Text: text, Target: &target}
			if source != "" {
				req.Source = &source
			}
			resp, err := svc.Translate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to translate")
	cmd.Flags().StringVar(&target, "target", translation.DefaultTarget, "target language code")
	cmd.Flags().StringVar(&source, "source", "", "source language code (auto-detected when empty)")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newVerifyTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-token <token>",
		Short: "Verify an ID token and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			svc, cleanup, err := initializeIdentity(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize identity provider: %w", err)
			}
			defer cleanup()

			return printJSON(cmd, svc.VerifyToken(cmd.Context(), bearerHeader(args[0])))
		},
	}
}

// bearerHeader turns a token typed on the command line into an Authorization value that
// passes strict bearer parsing.
func bearerHeader(token string) string {
	if strings.HasPrefix(token, common.AuthorizationTypeBearer) {
		return token
	}
	return common.AuthorizationTypeBearer + token
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("FATAL: Failed to load configuration: %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, cleanup, err := initializeServer(ctx, cfg)
	if err != nil {
		log.Printf("FATAL: Failed to initialize server: %v", err)
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("FATAL: Server failed to start or crashed: %v", err)
		}
		return err
	case <-ctx.Done():
		log.Println("INFO: Received shutdown signal. Shutting down server...")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
		return err
	}
	log.Println("INFO: Server shutdown complete.")
	return nil
}
