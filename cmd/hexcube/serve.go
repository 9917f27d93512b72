package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/hexcube/internal/adapters/http"
	"svw.info/hexcube/internal/generator"
	"svw.info/hexcube/internal/hint"
	"svw.info/hexcube/internal/infrastructure/storage"
	"svw.info/hexcube/internal/solver"
	"svw.info/hexcube/internal/usecase"
	"svw.info/hexcube/internal/validator"
)

var (
	serveAddr     string
	serveData     string
	serveStateDB  string
	serveLogLevel string
	serveMethod   string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as a JSON API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveData, "data", "./data", "cached-puzzle directory")
	serveCmd.Flags().StringVar(&serveStateDB, "state-db", "./hexcube-state.db", "game-state database file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "debug|info|warn|error")
	serveCmd.Flags().StringVar(&serveMethod, "method", "backtrack", "construction for /api/generate: backtrack|algebraic")

	rootCmd.AddCommand(serveCmd)
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	lvl := slog.LevelInfo
	switch strings.ToLower(serveLogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	method, err := generator.ParseMethod(serveMethod)
	if err != nil {
		return err
	}

	states, err := storage.OpenBolt(serveStateDB)
	if err != nil {
		return err
	}
	defer states.Close()
	_ = os.MkdirAll(serveData, 0o755)

	s := solver.NewBacktracking()
	g := generator.New(s)
	g.Method = method
	uc := usecase.NewService(s, g, validator.New(), hint.NewSingles(), states, storage.NewFS(serveData))
	h := httpadapter.New(uc)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           requestLogger(logger, h.Router()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "data", serveData, "state-db", serveStateDB, "method", method)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
