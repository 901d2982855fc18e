package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/reswipe/reswipe/internal/consumer/changefeed"
	"github.com/reswipe/reswipe/internal/health"
	"github.com/reswipe/reswipe/internal/metrics"
	"github.com/reswipe/reswipe/internal/server"
	"github.com/reswipe/reswipe/internal/service/impl"
	"github.com/reswipe/reswipe/internal/storage/postgres"
	"github.com/reswipe/reswipe/internal/sweeper"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	AuthHeader string `long:"auth.header" env:"AUTH_HEADER" default:"X-User-ID" description:"header carrying caller id verified by the identity provider"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
	PostgresTxRetries          int    `long:"postgres.tx_retries" env:"POSTGRES_TX_RETRIES" default:"3" description:"count of retries of a transaction failed by serialization failure or deadlock"`

	ClaimsCooldown        time.Duration `long:"claims.cooldown" env:"CLAIMS_COOLDOWN" default:"30s" description:"minimal interval between two claims of a user"`
	ClaimsTimeout         time.Duration `long:"claims.timeout" env:"CLAIMS_TIMEOUT" default:"15m" description:"time given to pick the food up"`
	ClaimsRestoreQuantity bool          `long:"claims.restore_quantity" env:"CLAIMS_RESTORE_QUANTITY" description:"return a unit of a multi-unit post back when its claim is cancelled or expired"`
	ClaimsRateLimit       float64       `long:"claims.rate_limit" env:"CLAIMS_RATE_LIMIT" default:"1" description:"claim mutations per second allowed for a user"`
	ClaimsRateBurst       int           `long:"claims.rate_burst" env:"CLAIMS_RATE_BURST" default:"5" description:"burst of claim mutations allowed for a user"`

	LeadersCacheTTL time.Duration `long:"leaders.cache_ttl" env:"LEADERS_CACHE_TTL" default:"1m" description:"lifetime of cached leaderboard"`

	SweeperInterval           time.Duration `long:"sweeper.interval" env:"SWEEPER_INTERVAL" default:"5m" description:"interval between expired claims sweeps"`
	SweeperDeleteExpiredPosts bool          `long:"sweeper.delete_expired_posts" env:"SWEEPER_DELETE_EXPIRED_POSTS" description:"delete available posts past their expiration time on every sweep"`

	ChangefeedBatchSize     uint16        `long:"changefeed.batch_size" env:"CHANGEFEED_BATCH_SIZE" default:"100" description:"count of change events read at once"`
	ChangefeedPollInterval  time.Duration `long:"changefeed.poll_interval" env:"CHANGEFEED_POLL_INTERVAL" default:"1m" description:"interval between change feed reads when there are no notifications"`
	ChangefeedRetryInterval time.Duration `long:"changefeed.retry_interval" env:"CHANGEFEED_RETRY_INTERVAL" default:"10s" description:"interval to be waited on error before retry"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "ReSwipe"
	parser.LongDescription = "ReSwipe food sharing service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Infof("%+v", opts)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "reswipe",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := postgres.New(db, opts.PostgresTxRetries)
	srv := impl.New(s, impl.Config{
		Cooldown:        opts.ClaimsCooldown,
		ClaimTimeout:    opts.ClaimsTimeout,
		RestoreQuantity: opts.ClaimsRestoreQuantity,
	}, impl.WithMetrics(metrics.NewCollector(reg)))

	listener, err := changefeed.Listen(opts.Postgres, 10*time.Second, time.Minute)
	if err != nil {
		logrus.WithError(err).Fatal("failed to listen change feed notifications")
	}
	defer listener.Close()

	feed := changefeed.New(s, srv, listener.Wake(), changefeed.Config{
		BatchSize:     opts.ChangefeedBatchSize,
		PollInterval:  opts.ChangefeedPollInterval,
		RetryInterval: opts.ChangefeedRetryInterval,
	})
	sw := sweeper.New(srv, opts.SweeperInterval, opts.SweeperDeleteExpiredPosts)

	r := chi.NewRouter()
	server.SetupRouter(srv, r, server.Config{
		Timeout:     opts.RequestTimeout,
		AuthHeader:  opts.AuthHeader,
		ClaimsRate:  rate.Limit(opts.ClaimsRateLimit),
		ClaimsBurst: opts.ClaimsRateBurst,
		LeadersTTL:  opts.LeadersCacheTTL,
	})
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", db.PingContext),
		feed,
		sw,
	))
	r.Handle("/metrics", metrics.Handler(reg))

	httpSrv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return feed.Run(ctx)
	})
	gr.Go(func() error {
		return sw.Run(ctx)
	})
	gr.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), opts.RequestTimeout)
		defer shutdownCancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown http server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
