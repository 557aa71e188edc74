package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	graphgate "github.com/app-sre/graphgate/pkg"
	"github.com/app-sre/graphgate/pkg/audit"
	"github.com/app-sre/graphgate/pkg/env"
	"github.com/app-sre/graphgate/pkg/env/apikey"
	graphenv "github.com/app-sre/graphgate/pkg/env/graph"
	"github.com/app-sre/graphgate/pkg/graph"
	"github.com/app-sre/graphgate/pkg/handlers"
	"github.com/app-sre/graphgate/pkg/middleware"
	"github.com/app-sre/graphgate/pkg/schema"
	"github.com/app-sre/graphgate/pkg/version"
)

const (
	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
	connectTimeout    = 10 * time.Second

	defaultPort = 8080
)

func Run(logger *zap.SugaredLogger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load .env file: %w", err)
	}

	production := graphgate.Production()
	logger.Infof("Starting graphgate version: %s", version.Version())

	ge := graphenv.NewGraphEnv()
	err := ge.Populate()
	if err != nil {
		return fmt.Errorf("unable to configure graph database: %w", err)
	}
	logger.Infof("Using graph database: %s", describeGraph(ge))

	ke := apikey.NewAPIKeyEnv()
	err = ke.Populate()
	if err != nil {
		return fmt.Errorf("unable to configure API key: %w", err)
	}
	logger.Debugf("Using API key: %s", ke.Redacted())

	s := schema.Default()
	if path := os.Getenv("SCHEMA_FILE_PATH"); path != "" {
		s, err = schema.LoadFile(path)
		if err != nil {
			return fmt.Errorf("unable to configure schema: %w", err)
		}
		logger.Infof("Loaded schema from file: %s", path)
	}
	logger.Debugf("Schema labels: %v, relationship types: %v", s.Labels(), s.Types())

	client, err := graph.NewNeo4jClient(graph.Options{
		URI:            ge.URI,
		Username:       ge.Username,
		Password:       ge.Password,
		Database:       ge.Database,
		MaxConnections: ge.MaxConnections,
		AllowWrite:     ge.AllowWrite,
		UserAgent:      "graphgate/" + version.Version(),
	})
	if err != nil {
		return fmt.Errorf("unable to open graph database connection: %w", err)
	}
	defer func() { _ = client.Close(context.Background()) }()

	vctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	if err := client.VerifyConnectivity(vctx); err != nil {
		logger.Warnf("Unable to connect to the graph database: %s", err)
	} else {
		logger.Debugf("Connected to graph database at: %s", ge.Address())
	}
	cancel()

	cfg := &graphgate.Config{
		Graph:     client,
		GraphEnv:  ge,
		APIKeyEnv: ke,
		Schema:    s,
		Audit:     audit.NewLoggerAudit(logger),
		Logger:    logger,
	}

	port, err := listenPort()
	if err != nil {
		return fmt.Errorf("unable to configure HTTP server: %w", err)
	}
	logger.Infof("HTTP server starting on port: %d", port)

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           Router(cfg, production),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(sctx); err != nil {
		return fmt.Errorf("unable to shut down HTTP server: %w", err)
	}

	return nil
}

// Router builds the request routing and the middleware chain of every
// endpoint. Health checks are not access-logged in production.
func Router(cfg *graphgate.Config, production bool) http.Handler {
	// Temp workaround for easy to access io.Writer.
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	schemaChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Authentication(cfg)),
	).Then(handlers.Schema(cfg))

	cypherChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Timeout(graphgate.RequestTimeout())),
		alice.Constructor(middleware.Authentication(cfg)),
		alice.Constructor(middleware.Audit(cfg)),
	).Then(handlers.Cypher(cfg))

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods(http.MethodGet)
	r.Handle("/schema", logHandler(defaultLogOutput, schemaChain)).Methods(http.MethodGet)
	r.Handle("/cypher", logHandler(defaultLogOutput, cypherChain)).Methods(http.MethodPost)

	return r
}

func describeGraph(ge *graphenv.Env) string {
	return fmt.Sprintf("%s at %s (database: %s, routing: %t, encrypted: %t, write sessions: %t)",
		ge.Scheme.Name(), ge.Address(), ge.Database, ge.Scheme.IsRouting(), ge.Scheme.IsSecure(), ge.AllowWrite)
}

func listenPort() (int, error) {
	s := os.Getenv("PORT")
	if s == "" {
		return defaultPort, nil
	}

	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, &env.TypeError{Name: "PORT"}
	}

	return port, nil
}
