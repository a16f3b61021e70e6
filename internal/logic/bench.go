package logic

import (
	"fmt"
	"os"
	"time"

	"github.com/kaleb-himes/wolfCLU/internal/algo"
	"github.com/kaleb-himes/wolfCLU/internal/benchmark"
	"github.com/kaleb-himes/wolfCLU/internal/config"
)

// RunBench benchmarks one named algorithm, or the full set with --all.
func RunBench(cfg *config.Config) error {
	driver := benchmark.NewDriver(time.Duration(cfg.Seconds) * time.Second)

	if cfg.All {
		return driver.RunAll(os.Stdout)
	}

	if cfg.Algorithm == "" {
		return fmt.Errorf("name an algorithm or pass --all")
	}

	spec, err := algo.Parse(cfg.Algorithm)
	if err != nil {
		return err
	}

	result, err := driver.Run(spec)
	if err != nil {
		return err
	}

	fmt.Println(result) //nolint:forbidigo

	return nil
}
