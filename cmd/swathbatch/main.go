package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/nordsat/swathbatch/internal/avhrr"
	"github.com/nordsat/swathbatch/internal/batch"
	"github.com/nordsat/swathbatch/internal/log"
	"github.com/nordsat/swathbatch/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string // value of -c/--config
	flagVerbose    int    // count of -v/--verbose
	flagDebug      bool   // stop a batch on its first failed item
)

// processor is the processing callable handed to the batch runner,
// replaceable in tests.
var processor batch.Func = avhrr.Process

// maxVerbosity caps repeated -v flags; anything past -vv is already debug.
const maxVerbosity = 2

func main() {
	rootCmd.Flags().StringVarP(&flagConfigPath, "config", "c", "", "processor configuration file, must exist when given")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "raise log verbosity, repeatable up to -vv")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "stop a batch run on the first failed item")

	// never print messages
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("swathbatch failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "swathbatch <path> <start_line> <end_line>",
	Short:        "Feed swath files from a file, directory or tar archive to the processor one by one",
	Long: `swathbatch processes every item found under path: the file itself, every
direct child of a directory, or every regular-file member of a tar archive.
start_line and end_line scope processing within each item; an end_line of 0
means through the last scanline. In batch runs a failed item is logged and
skipped; a single plain file fails the run directly.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	Version:      version(),
	RunE:         doRun,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "version provides the version of swathbatch",
	Run: func(cmd *cobra.Command, args []string) {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			fmt.Println("swathbatch: version info not available")
			return
		}

		fmt.Printf("swathbatch: %s\n", info.Main.Version)
		fmt.Printf("go:         %s\n", info.GoVersion)
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				fmt.Printf("commit:     %s\n", s.Value)
			case "vcs.time":
				fmt.Printf("date:       %s\n", s.Value)
			case "vcs.modified":
				fmt.Printf("dirty:      %s\n", s.Value)
			}
		}
	},
}

func doRun(cmd *cobra.Command, args []string) error {
	if flagVerbose > maxVerbosity {
		flagVerbose = maxVerbosity
	}
	slog.SetDefault(log.New(flagVerbose))

	ctx := cmd.Context()
	attrs := slog.Group("swathbatch",
		slog.String("run", uuid.NewString()),
		slog.Int("pid", os.Getpid()),
	)
	ctx = log.ContextAttrs(ctx, attrs)

	start, err := model.ParseScanline(args[1])
	if err != nil {
		return err
	}
	end, err := model.ParseScanline(args[2])
	if err != nil {
		return err
	}
	rng, err := model.NewRange(start, end)
	if err != nil {
		return err
	}

	if err := model.ValidateConfigPath(flagConfigPath); err != nil {
		return err
	}
	if flagConfigPath != "" {
		// a broken config is a fatal startup error, not an isolated failure
		if err := avhrr.LoadConfig(flagConfigPath); err != nil {
			return err
		}
	}

	runner := batch.Runner{
		Process:       processor,
		Range:         rng,
		StopOnFailure: flagDebug,
	}
	return runner.Run(ctx, args[0])
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return info.Main.Version
}
