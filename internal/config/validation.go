package config

import (
	"fmt"
)

// Validate checks the merged configuration for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Provider.Model == "" {
		errs = append(errs, "provider.model must not be empty")
	}
	if c.Provider.APIKeyEnv == "" {
		errs = append(errs, "provider.api_key_env must not be empty")
	}

	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}

	if c.Preview.OutputPath == "" {
		errs = append(errs, "preview.output_path must not be empty")
	}

	if c.Workflow.MaxIterations < 1 {
		errs = append(errs, "workflow.max_iterations must be >= 1")
	}

	if c.Session.Path == "" {
		errs = append(errs, "session.path must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
