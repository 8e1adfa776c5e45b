// Package web serves the built single-page client.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bootwatcher/config"
	"bootwatcher/internal/delivery"
	"bootwatcher/internal/delivery/middleware"
	"bootwatcher/internal/domain/lifecycle"
	"bootwatcher/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	defaultPort      = 8080
	defaultPublicDir = "public"
	indexFile        = "index.html"
	headCloseTag     = "</head>"
)

// ServerParams holds dependencies for the SPA server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
}

type webServer struct {
	cfg       *config.Config
	logger    *slog.Logger
	port      int
	publicDir string
	server    *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := newWebServer(params.Cfg, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWebServer(cfg *config.Config, logger *slog.Logger) *webServer {
	srv := &webServer{
		cfg:       cfg,
		logger:    logger,
		port:      defaultPort,
		publicDir: defaultPublicDir,
	}
	if cfg.Web != nil {
		if cfg.Web.Port > 0 {
			srv.port = cfg.Web.Port
		}
		if cfg.Web.PublicDir != "" {
			srv.publicDir = cfg.Web.PublicDir
		}
	}

	echoServer := echo.New()
	echoServer.HideBanner = true

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	echoServer.Use(echomiddleware.Gzip())

	// index.html always goes through serveIndex so the client env can be injected.
	echoServer.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root: srv.publicDir,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path

			return p == "/" || strings.HasSuffix(p, "/"+indexFile)
		},
	}))

	echoServer.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	if cfg.Env.Debug {
		echoServer.GET("/debug", srv.debug)
	}
	echoServer.GET("/*", srv.serveIndex)

	srv.server = echoServer

	return srv
}

// serveIndex answers every client-side route with index.html
func (s *webServer) serveIndex(c echo.Context) error {
	page, err := os.ReadFile(filepath.Join(s.publicDir, indexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return echo.ErrNotFound
		}

		return errors.Wrap(err, "read index.html")
	}

	if s.cfg.Env.Debug {
		page, err = injectClientEnv(page, clientEnv(s.cfg))
		if err != nil {
			return err
		}
	}

	return c.HTMLBlob(http.StatusOK, page)
}

// clientEnv is the browser configuration exposed as window.env.
func clientEnv(cfg *config.Config) map[string]string {
	env := map[string]string{
		"VITE_MAPS_API_KEY":                 "",
		"VITE_FIREBASE_API_KEY":             "",
		"VITE_FIREBASE_AUTH_DOMAIN":         "",
		"VITE_FIREBASE_DATABASE_URL":        "",
		"VITE_FIREBASE_PROJECT_ID":          "",
		"VITE_FIREBASE_STORAGE_BUCKET":      "",
		"VITE_FIREBASE_MESSAGING_SENDER_ID": "",
		"VITE_FIREBASE_APP_ID":              "",
		"VITE_RELAY_URL":                    "",
	}

	if cfg.Web != nil {
		env["VITE_MAPS_API_KEY"] = cfg.Web.MapsKey
		env["VITE_RELAY_URL"] = cfg.Web.RelayURL
	}
	if cfg.Firebase != nil {
		env["VITE_FIREBASE_API_KEY"] = cfg.Firebase.Web.APIKey
		env["VITE_FIREBASE_AUTH_DOMAIN"] = cfg.Firebase.Web.AuthDomain
		env["VITE_FIREBASE_DATABASE_URL"] = cfg.Firebase.DatabaseURL
		env["VITE_FIREBASE_PROJECT_ID"] = cfg.Firebase.ProjectID
		env["VITE_FIREBASE_STORAGE_BUCKET"] = cfg.Firebase.Web.StorageBucket
		env["VITE_FIREBASE_MESSAGING_SENDER_ID"] = cfg.Firebase.Web.MessagingSenderID
		env["VITE_FIREBASE_APP_ID"] = cfg.Firebase.Web.AppID
	}

	return env
}

// injectClientEnv inserts a window.env script before the first </head>.
// Pages without a head element are returned unchanged.
func injectClientEnv(page []byte, env map[string]string) ([]byte, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "marshal client env")
	}

	html := string(page)
	idx := strings.Index(html, headCloseTag)
	if idx < 0 {
		return page, nil
	}

	var b strings.Builder
	b.Grow(len(html) + len(payload) + 40)
	b.WriteString(html[:idx])
	b.WriteString("<script>window.env = ")
	b.Write(payload)
	b.WriteString(";</script>")
	b.WriteString(html[idx:])

	return []byte(b.String()), nil
}

type debugInfo struct {
	Env             string   `json:"env"`
	ServiceName     string   `json:"serviceName"`
	Port            int      `json:"port"`
	PublicDir       string   `json:"publicDir"`
	RelayURL        string   `json:"relayUrl"`
	FirebaseProject string   `json:"firebaseProjectId"`
	DatabaseURL     string   `json:"databaseUrl"`
	MapsKeySet      bool     `json:"mapsKeySet"`
	FirebaseKeySet  bool     `json:"firebaseApiKeySet"`
	AllowedOrigins  []string `json:"allowedOrigins"`
}

// debug reports the non-secret runtime configuration; keys are reported as set or unset
func (s *webServer) debug(c echo.Context) error {
	info := debugInfo{
		Env:            s.cfg.Env.Env,
		ServiceName:    s.cfg.Env.ServiceName,
		Port:           s.port,
		PublicDir:      s.publicDir,
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
	}
	if s.cfg.Web != nil {
		info.RelayURL = s.cfg.Web.RelayURL
		info.MapsKeySet = s.cfg.Web.MapsKey != ""
	}
	if s.cfg.Firebase != nil {
		info.FirebaseProject = s.cfg.Firebase.ProjectID
		info.DatabaseURL = s.cfg.Firebase.DatabaseURL
		info.FirebaseKeySet = s.cfg.Firebase.Web.APIKey != ""
	}

	return c.JSON(http.StatusOK, info)
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting web server",
		slog.String("host_port", hostPort),
		slog.String("public_dir", s.publicDir),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve web")
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
