package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lightcal/lightcal/client"
	"github.com/lightcal/lightcal/internal/config"
	"github.com/lightcal/lightcal/internal/logger"
)

const serviceName = "lightcal"

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// app carries the resolved configuration to the sub-commands.
type app struct {
	cfg *config.Config

	// Flag values; applied over cfg when explicitly set.
	profilerURL string
	wizURL      string
	timeout     time.Duration
	debug       bool
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "lightcal",
		Short:         "Drive the light profiling tools over their HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("profiler-url") {
				cfg.ProfilerURL = a.profilerURL
			}
			if flags.Changed("wiz-url") {
				cfg.WizURL = a.wizURL
			}
			if flags.Changed("timeout") {
				cfg.CallTimeout = a.timeout
			}
			if flags.Changed("debug") {
				cfg.Debug = a.debug
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			logger.Init(serviceName, cfg.LogFormat, lvl)
			if cfg.Debug {
				log.Debug().Msg("debug logging enabled")
			}
			a.cfg = cfg
			return nil
		},
	}

	defaults := config.NewForTesting()
	rootCmd.PersistentFlags().StringVar(&a.profilerURL, "profiler-url", defaults.ProfilerURL, "Base URL of the profiler tool (env LIGHTCAL_PROFILER_URL)")
	rootCmd.PersistentFlags().StringVar(&a.wizURL, "wiz-url", defaults.WizURL, "Base URL of the WiZ profiling tool (env LIGHTCAL_WIZ_URL)")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", defaults.CallTimeout, "How long to wait for the response (env LIGHTCAL_CALL_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output including HTTP dumps")

	rootCmd.AddCommand(newProfilerCmd(a))
	rootCmd.AddCommand(newWizCmd(a))

	return rootCmd
}

func (a *app) profilerClient() (*client.ProfilerClient, error) {
	return client.NewProfilerClient(a.cfg.ProfilerURL, a.cfg.ClientOptions()...)
}

func (a *app) wizClient() (*client.WizClient, error) {
	return client.NewWizClient(a.cfg.WizURL, a.cfg.ClientOptions()...)
}

// await waits for call, logs the outcome and prints a non-empty response body.
func (a *app) await(cmd *cobra.Command, endpoint string, call *client.Call) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	body, err := call.Result(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().
			Err(err).
			Str("endpoint", endpoint).
			Str("request_id", call.ID()).
			Dur("elapsed", elapsed).
			Msg("call failed")
		return err
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("request_id", call.ID()).
		Int("response_bytes", len(body)).
		Dur("elapsed", elapsed).
		Msg("call completed")

	if len(body) > 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(trimNewline(body)))
	}
	return nil
}

func trimNewline(b json.RawMessage) json.RawMessage {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
