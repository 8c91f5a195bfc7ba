package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/web-wordviz/internal/common"
	"github.com/dtnitsch/web-wordviz/models"
	"github.com/dtnitsch/web-wordviz/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "listen address (default from config, 127.0.0.1:8080)"},
		&cli.BoolFlag{Name: "readability", Usage: "count only the main article text"},
		&cli.BoolFlag{Name: "stopwords", Usage: "drop common English and Chinese function words"},
	}
}

// ServeAction runs the web UI until SIGINT or SIGTERM.
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}
	if c.IsSet("readability") {
		cfg.Analysis.Readability = c.Bool("readability")
	}
	if c.IsSet("stopwords") {
		cfg.Analysis.Stopwords = c.Bool("stopwords")
	}

	p, err := pipeline.FromConfig(cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: failed to listen on %s: %v", cfg.Server.Addr, err), 2)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting server", "addr", "http://"+ln.Addr().String(), "config", cfg.Path)
	if err := Run(ctx, ln, NewServer(p, cfg, logger), logger); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}
	return nil
}

// NewServer wires the routes into an http.Server.
func NewServer(p *pipeline.Pipeline, cfg *models.Config, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(p, cfg, logger))

	return &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Run serves on ln until ctx is cancelled, then shuts the server down,
// letting in-flight analyses finish for up to shutdownTimeout.
func Run(ctx context.Context, ln net.Listener, srv *http.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
