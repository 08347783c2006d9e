package utils

import (
	"fmt"
	"os"
)

// EnsureDirectories creates the output tree of a pipeline run.
func EnsureDirectories(cfg *Config) error {
	for _, dir := range []string{
		cfg.RawDataDir(),
		cfg.ProcessedDataDir(),
		cfg.ResultsDir(),
		cfg.FiguresDir(),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %v; %v", dir, err)
		}
	}
	return nil
}
