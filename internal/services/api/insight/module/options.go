package module

import (
	"time"

	"gitinsight/internal/platform/config"
)

// Options holds configuration settings for the insight module
type Options struct {
	ReadmeTimeout    time.Duration
	SummarizeTimeout time.Duration
}

// FromConfig reads INSIGHT_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	ic := cfg.Prefix("INSIGHT_")
	return Options{
		ReadmeTimeout:    ic.MayDuration("README_TIMEOUT", 10*time.Second),
		SummarizeTimeout: ic.MayDuration("SUMMARIZE_TIMEOUT", 30*time.Second),
	}
}
