package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soheilhy/cmux"
	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"
	"google.golang.org/grpc"

	"github.com/katalvlaran/csrgraph/catalog"
	"github.com/katalvlaran/csrgraph/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC + HTTP control-plane server on one listener",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen-addr", "", "override CSRGRAPH_LISTEN_ADDR")
	serveCmd.Flags().Int("workers", 0, "override CSRGRAPH_WORKERS")
	serveCmd.Flags().String("log-level", "", "override CSRGRAPH_LOG_LEVEL")

	_ = v.BindPFlag("listen_addr", serveCmd.Flags().Lookup("listen-addr"))
	_ = v.BindPFlag("workers", serveCmd.Flags().Lookup("workers"))
	_ = v.BindPFlag("log_level", serveCmd.Flags().Lookup("log-level"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(v)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Str("listen_addr", cfg.ListenAddr).Int("workers", cfg.Workers).Msg("csrgraphd: starting")

	shutdownTracer, err := initTracer(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("csrgraphd: tracing exporter unavailable, continuing without it")
		shutdownTracer = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}

	// cmux demultiplexes gRPC (HTTP/2 + application/grpc) and the plain
	// HTTP/1.1 JSON gateway off the same listening socket.
	m := cmux.New(ln)
	grpcL := m.Match(cmux.HTTP2HeaderField("content-type", "application/grpc"))
	httpL := m.Match(cmux.HTTP1Fast())

	cat := catalog.New()
	svc := service.New(cat)

	grpcServer := grpc.NewServer()
	service.RegisterCsrGraphServiceServer(grpcServer, svc)

	httpServer := &http.Server{Handler: service.NewHTTPGateway(svc)}

	sup := suture.NewSimple("csrgraphd")
	sup.Add(listenerService{name: "grpc", serve: func() error { return grpcServer.Serve(grpcL) }, stop: grpcServer.GracefulStop})
	sup.Add(listenerService{name: "http", serve: func() error { return httpServer.Serve(httpL) }, stop: func() { _ = httpServer.Close() }})
	sup.Add(listenerService{name: "mux", serve: m.Serve, stop: func() {}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("csrgraphd: shutdown signal received")
		cancel()
	}()

	errCh := sup.ServeBackground(ctx)
	return <-errCh
}

// listenerService adapts a blocking serve loop plus its stop function
// into a suture.Service: Serve blocks on the underlying server and
// returns once either the server errors or the supervisor context is
// cancelled, in which case stop is invoked to unblock it.
type listenerService struct {
	name  string
	serve func() error
	stop  func()
}

func (s listenerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.serve() }()

	select {
	case <-ctx.Done():
		s.stop()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		log.Warn().Str("listener", s.name).Err(err).Msg("csrgraphd: listener exited")
		return err
	}
}
