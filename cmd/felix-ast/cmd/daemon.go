package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	bboltcache "github.com/felix-ide/felix/internal/adapters/bbolt"
	watchfs "github.com/felix-ide/felix/internal/adapters/fsnotify"
	"github.com/felix-ide/felix/internal/adapters/pypath"
	"github.com/felix-ide/felix/internal/adapters/socket"
	"github.com/felix-ide/felix/internal/app"
	"github.com/felix-ide/felix/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the extraction daemon",
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon on a Unix socket",
	Args:  cobra.NoArgs,
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	Args:  cobra.NoArgs,
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger := newLogger()

	root, err := os.Getwd()
	if err != nil {
		return err
	}
	sockPath := cfg.SocketPath
	if sockPath == "" {
		sockPath = socket.SocketPath(root)
	}

	// Refuse to double-start before touching the cache DB.
	if socket.NewClient(sockPath).Ping() {
		fmt.Println("daemon already running")
		return nil
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = socket.DBPath(root)
	}
	cache, err := bboltcache.NewCache(dbPath)
	if err != nil {
		return fmt.Errorf("open resolution cache: %w", err)
	}
	defer cache.Close()

	a, err := app.New(app.Options{
		SearchPaths:   cfg.SearchPaths,
		Cache:         cache,
		MaxFrameBytes: cfg.MaxFrameBytes,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	// Watch the search roots so a moved module cannot serve a stale path.
	if cfg.Watch {
		watcher, err := watchfs.NewWatcher()
		if err != nil {
			return fmt.Errorf("init watcher: %w", err)
		}
		defer watcher.Stop()

		roots := cfg.SearchPaths
		if len(roots) == 0 {
			roots = pypath.DefaultRoots()
		}
		for _, watchRoot := range roots {
			if err := watcher.Watch(watchRoot, func(path string) {
				logger.Debug("search root changed, purging resolutions", "path", path)
				cache.Purge()
			}); err != nil {
				logger.Warn("watch failed", "root", watchRoot, "error", err)
			}
		}
	}

	srv := socket.NewServer(a, sockPath, logger)
	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Printf("felix-ast daemon started at %s\n", sockPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-srv.ShutdownCh():
	}

	return srv.Stop()
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	sockPath := cfg.SocketPath
	if sockPath == "" {
		sockPath = socket.SocketPath(root)
	}

	client := socket.NewClient(sockPath)
	if !client.Ping() {
		fmt.Println("daemon is not running")
		return nil
	}
	if err := client.Shutdown(); err != nil {
		return err
	}
	fmt.Println("daemon stopped")
	return nil
}
