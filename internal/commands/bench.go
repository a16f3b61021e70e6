package commands

import (
	"github.com/spf13/cobra"

	"github.com/kaleb-himes/wolfCLU/internal/logic"
)

// NewBenchCommand creates a new cobra command for the bench subcommand.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bench [algorithm] [flags]",
		Aliases: []string{"benchmark"},
		Short:   "Benchmark cipher and hash throughput",
		Long: `Run a timed throughput loop over synthetic 16 KiB blocks, e.g.
"wolfclu bench aes-cbc-256 -t 5" or "wolfclu bench --all".

The per-algorithm duration is bounded to 1-10 seconds (default 3).`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: bindFlags,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshal()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				cfg.Algorithm = args[0]
			}

			return logic.RunBench(&cfg)
		},
	}

	cmd.Flags().IntP("time", "t", 0, "Seconds to run each algorithm (1-10, default 3)")
	cmd.Flags().Bool("all", false, "Benchmark every supported algorithm")

	return cmd
}
