package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/facultyscope/pkg/cache"
	"github.com/umputun/facultyscope/pkg/config"
	"github.com/umputun/facultyscope/pkg/docstore"
	"github.com/umputun/facultyscope/pkg/graph"
	"github.com/umputun/facultyscope/pkg/profile"
	"github.com/umputun/facultyscope/pkg/repository"
	"github.com/umputun/facultyscope/pkg/scheduler"
	"github.com/umputun/facultyscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting facultyscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run wires stores from the config and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	setupLog(opts.Debug, opts.NoColor, cfg.Secrets()...)

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	ss := st.serverStores()
	sched := newScheduler(cfg, st, ss)
	sched.Start(ctx)
	defer sched.Stop()
	ss.Health = sched

	srv := server.New(server.Config{
		Listen:                cfg.Server.Listen,
		Timeout:               cfg.Server.Timeout,
		Version:               revision,
		Debug:                 opts.Debug,
		ResetFavoritesOnLogin: cfg.Profiles.ResetFavoritesOnLogin,
		TrendYears:            cfg.Trends.Years,
	}, ss)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// stores holds every opened backend. docs and graph are nil when not configured.
type stores struct {
	repos   *repository.Repositories
	docs    *docstore.Store
	graph   *graph.Store
	cache   *cache.Redis
	profile *profile.Store
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	st := &stores{}
	var err error

	st.repos, err = repository.NewRepositories(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	lgr.Printf("[INFO] %s database ready", cfg.Database.Driver)

	if cfg.Mongo.URI != "" {
		st.docs, err = docstore.New(ctx, docstore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: cfg.Mongo.Timeout})
		if err != nil {
			st.close()
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		lgr.Printf("[INFO] mongo database %q ready", cfg.Mongo.Database)
	}

	if cfg.Neo4j.URI != "" {
		// graph is optional, the server answers 503 on graph endpoints without it
		gctx, cancel := context.WithTimeout(ctx, cfg.Health.Timeout)
		st.graph, err = graph.New(gctx, graph.Config{URI: cfg.Neo4j.URI, User: cfg.Neo4j.User,
			Password: cfg.Neo4j.Password, Database: cfg.Neo4j.Database})
		cancel()
		if err != nil {
			lgr.Printf("[WARN] neo4j is unavailable, keyword networks disabled: %v", err)
			st.graph = nil
		}
	}

	st.cache = cache.New(ctx, cache.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB, TTL: cfg.Redis.TTL})

	var backend profile.Backend = st.repos.Profile
	if cfg.Profiles.Backend == config.BackendMongo {
		backend = st.docs.Profiles
	}
	var dir cache.Directory = st.repos.Faculty
	if cfg.Profiles.Directory == config.BackendMongo {
		dir = st.docs.Faculty
	}
	st.profile = profile.New(profile.Config{
		Backend:   backend,
		Directory: cache.NewCachedDirectory(dir, st.cache),
		Timeout:   cfg.Profiles.Timeout,
	})
	lgr.Printf("[INFO] profiles kept in %s, faculty resolved from %s", cfg.Profiles.Backend, cfg.Profiles.Directory)

	return st, nil
}

// serverStores maps opened backends to server stores, leaving missing optional ones nil
func (st *stores) serverStores() server.Stores {
	res := server.Stores{
		Profiles: st.profile,
		Academic: st.repos.Faculty,
		Keywords: cache.NewCachedList("keywords", st.repos.Faculty.Keywords, st.cache),
	}
	if st.docs != nil {
		res.Documents = st.docs.Faculty
	}
	if st.graph != nil {
		res.Graph = st.graph
		res.GraphKeywords = cache.NewCachedList("graph-keywords", st.graph.Keywords, st.cache)
	}
	return res
}

// newScheduler registers a check per opened backend and warm-ups of cached keyword lists
func newScheduler(cfg *config.Config, st *stores, ss server.Stores) *scheduler.Scheduler {
	sched := scheduler.NewScheduler(scheduler.Config{Interval: cfg.Health.Interval, Timeout: cfg.Health.Timeout})
	sched.AddCheck("sql", st.repos)
	if st.docs != nil {
		sched.AddCheck("mongo", st.docs)
	}
	if st.graph != nil {
		sched.AddCheck("neo4j", st.graph)
	}
	if st.cache.Enabled() {
		sched.AddCheck("redis", st.cache)
		// warming only makes sense with a shared cache
		sched.AddWarmer("keywords", "sql", ss.Keywords)
		if ss.GraphKeywords != nil {
			sched.AddWarmer("graph-keywords", "neo4j", ss.GraphKeywords)
		}
	}
	return sched
}

func (st *stores) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if st.cache != nil {
		if err := st.cache.Close(); err != nil {
			lgr.Printf("[WARN] failed to close redis: %v", err)
		}
	}
	if st.graph != nil {
		if err := st.graph.Close(ctx); err != nil {
			lgr.Printf("[WARN] failed to close neo4j: %v", err)
		}
	}
	if st.docs != nil {
		if err := st.docs.Close(ctx); err != nil {
			lgr.Printf("[WARN] failed to close mongo: %v", err)
		}
	}
	if st.repos != nil {
		if err := st.repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
