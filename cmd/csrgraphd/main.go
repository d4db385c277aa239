// Command csrgraphd serves the control-plane action surface of spec §6
// over gRPC and HTTP/JSON, and provides a bench subcommand for timing
// the triangle counter against a file on disk (spec §4.9).
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "csrgraphd",
	Short: "CSR graph analytics daemon and benchmark harness",
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("csrgraphd: fatal error")
	}
}
