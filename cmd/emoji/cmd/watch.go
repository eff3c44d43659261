package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yleoer/emoji/pkg/database"
	"github.com/yleoer/emoji/pkg/scheduler"
)

var (
	watchIn       string
	watchOut      string
	watchData     string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert text files dropped into a directory",
	Long: `Watch the input directory and write converted copies of .txt/.md files to the
output directory. Converted files are recorded in a SQLite database so unchanged
files are not converted twice. When a dictionary file is set it is reloaded on change.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchIn, "in", "", "Input directory (env EMOJI_INPUT_DIR)")
	watchCmd.Flags().StringVar(&watchOut, "out", "", "Output directory (env EMOJI_OUTPUT_DIR)")
	watchCmd.Flags().StringVar(&watchData, "data", "", "Database directory (env EMOJI_DATA_DIR)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Delay after the last change before converting (env EMOJI_DEBOUNCE)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	cfg := a.cfg
	if watchIn != "" {
		cfg.InputDir = watchIn
	}
	if watchOut != "" {
		cfg.OutputDir = watchOut
	}
	if watchData != "" {
		cfg.DataDir = watchData
	}
	if watchDebounce > 0 {
		cfg.Debounce = watchDebounce
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	a.logger.Printf("Configuration loaded: InputDir=%s, OutputDir=%s, DBPath=%s, DictFile=%s",
		cfg.InputDir, cfg.OutputDir, cfg.DBPath, cfg.DictFile)

	store, err := database.NewSQLiteStore(cfg.DBPath, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	ts := scheduler.NewTaskScheduler(cfg, store, a.emoji, a.text, a.logger)
	ts.InitialScan()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a.logger.Println("Application is running. Press Ctrl+C to exit.")
	return ts.Run(ctx)
}
