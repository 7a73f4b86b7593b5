package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Graph.validate(); err != nil {
		return fmt.Errorf("graph: %w", err)
	}

	if c.Seeder.BatchSize <= 0 {
		return fmt.Errorf("seeder.batch_size must be > 0 (got %d)", c.Seeder.BatchSize)
	}

	return nil
}

func (g *GraphConfig) validate() error {
	if g.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be >= 1 (got %d)", g.MaxDepth)
	}
	if g.MaxCycles <= 0 {
		return fmt.Errorf("max_cycles must be > 0 (got %d)", g.MaxCycles)
	}
	if g.ReportCycles <= 0 {
		return fmt.Errorf("report_cycles must be > 0 (got %d)", g.ReportCycles)
	}
	if g.SampleCycles < 0 {
		return fmt.Errorf("sample_cycles must be >= 0 (got %d)", g.SampleCycles)
	}
	if g.SampleCycles > g.ReportCycles {
		return fmt.Errorf("sample_cycles (%d) cannot exceed report_cycles (%d)", g.SampleCycles, g.ReportCycles)
	}
	if g.TopLimitMax < 1 {
		return fmt.Errorf("top_limit_max must be >= 1 (got %d)", g.TopLimitMax)
	}
	return nil
}
