package main

import (
	"runtime"

	"github.com/spf13/viper"
)

// Config is the process-level configuration surface of spec §4.9: the
// listen address, worker count, and log level belong to the ambient
// server, not the kernel's own fixed constants (CHUNK_SIZE, size32).
// Workers is read and logged at startup; kernels size their own worker
// pools.
type Config struct {
	ListenAddr string
	Workers    int
	LogLevel   string
}

// loadConfig resolves flags bound onto v, falling back to
// CSRGRAPH_LISTEN_ADDR / CSRGRAPH_WORKERS / CSRGRAPH_LOG_LEVEL, falling
// back to built-in defaults.
func loadConfig(v *viper.Viper) Config {
	v.SetEnvPrefix("CSRGRAPH")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8980")
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log_level", "info")

	return Config{
		ListenAddr: v.GetString("listen_addr"),
		Workers:    v.GetInt("workers"),
		LogLevel:   v.GetString("log_level"),
	}
}
