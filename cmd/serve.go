// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/rbac-service/internal/config"
	"github.com/canonical/rbac-service/internal/db"
	"github.com/canonical/rbac-service/internal/identity"
	"github.com/canonical/rbac-service/internal/logging"
	"github.com/canonical/rbac-service/internal/monitoring/prometheus"
	"github.com/canonical/rbac-service/internal/storage"
	"github.com/canonical/rbac-service/internal/tracing"
	"github.com/canonical/rbac-service/pkg/authentication"
	"github.com/canonical/rbac-service/pkg/rbac"
	"github.com/canonical/rbac-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func ladderFromSpecs(specs *config.EnvSpec) (*rbac.Ladder, error) {
	if len(specs.PrivilegeLadder) == 0 {
		return rbac.DefaultLadder(), nil
	}

	return rbac.NewLadder(specs.PrivilegeLadder)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("rbac-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	ladder, err := ladderFromSpecs(specs)
	if err != nil {
		return fmt.Errorf("invalid privilege ladder: %w", err)
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	catalog := rbac.NewPermissionCatalog(s, specs.PermissionCacheSize, specs.PermissionCacheTTL, tracer, logger)
	service := rbac.NewService(s, dbClient, ladder, catalog, tracer, monitor, logger)

	var authenticate func(http.Handler) http.Handler
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewVerifier(
			context.Background(),
			authentication.Config{
				Issuer:          specs.AuthenticationIssuer,
				JWKSURL:         specs.AuthenticationJWKSURL,
				AllowedSubjects: specs.AuthenticationAllowedSubjects,
				RequiredScope:   specs.AuthenticationRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up token verification: %w", err)
		}

		logger.Info("Bearer token authentication is enabled")
		authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	} else {
		logger.Info("Trusting the identity header of the upstream proxy")
		authenticate = identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	}

	router := web.NewRouter(
		web.RouterConfig{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			MutationRateLimit:  specs.MutationRateLimit,
			Authenticate:       authenticate,
		},
		service,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
