package common

import (
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// SetupLogging installs a text slog handler on stderr. Only warnings and errors are
// shown unless verbose is set.
func SetupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// SetupLoggingFromFlags reads the persistent --verbose flag, if the command tree has one.
func SetupLoggingFromFlags(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	SetupLogging(verbose)
}
