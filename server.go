package sessionmanager

import (
	"fmt"
	"net/http"
	"os"

	"github.com/th3w1zard1/kotorscript-session-manager/core"
	"go.uber.org/zap"
)

type RuntimeConfig struct {
	Env        string
	Port       int
	ConfigFile string
}

var ListenAndServe = http.ListenAndServe
var Exit = os.Exit

// BuildServer resolves configuration and assembles the handler chain.
// Port precedence: RuntimeConfig flag, then environment, then config
// file, then the default.
func BuildServer(cfg RuntimeConfig) (string, http.Handler) {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = "session.config.yml"
	}

	config := core.LoadConfig(configFile)
	if err := config.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Bad environment: %v\n", err)
		Exit(1)
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	logger := newLogger(config.DebugLogs)

	mux := http.NewServeMux()

	if cfg.Env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__reload", reloader.Handler)

		if watcher, err := core.NewWatcher(config.TemplateDir, reloader.BroadcastReload); err != nil {
			fmt.Println("⚠️  Template watching disabled:", err)
		} else {
			watcher.Start()
		}
	}

	mux.Handle("/", core.NewRouter(config, logger))

	handler := core.WithRequestID(core.WithRequestLog(logger, mux))

	return fmt.Sprintf(":%d", config.Port), handler
}

var Start = func(cfg RuntimeConfig) {
	fmt.Println("Starting session manager in", cfg.Env, "mode...")

	addr, handler := BuildServer(cfg)

	fmt.Printf("✅ Session manager running at http://localhost%s\n", addr)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server failed: %v\n", err)
		Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
