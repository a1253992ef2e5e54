package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Tools    ToolsConfig    `json:"tools"`
	Preview  PreviewConfig  `json:"preview"`
	Workflow WorkflowConfig `json:"workflow"`
	Session  SessionConfig  `json:"session"`
}

type ProviderConfig struct {
	// Model is the Gemini model used for generation.
	Model string `json:"model"` // Default: "gemini-2.0-flash"

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `json:"api_key_env"` // Default: "GEMINI_API_KEY"
}

type ToolsConfig struct {
	// MaxFileSize caps the size of any single workspace file.
	MaxFileSize int64 `json:"max_file_size"` // Default: 10 * 1024 * 1024 (10MB)
}

type PreviewConfig struct {
	// OutputPath is where the assembled preview document is written.
	OutputPath string `json:"output_path"` // Default: "preview.html"

	// Title is the preview document title.
	Title string `json:"title"` // Default: "Preview"
}

type WorkflowConfig struct {
	// MaxIterations bounds the generate/tool-call loop per user turn.
	MaxIterations int `json:"max_iterations"` // Default: 20
}

type SessionConfig struct {
	// Path is where the workspace snapshot is persisted between runs.
	Path string `json:"path"` // Default: ".genui/session.json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:     "gemini-2.0-flash",
			APIKeyEnv: "GEMINI_API_KEY",
		},
		Tools: ToolsConfig{
			MaxFileSize: 10 * 1024 * 1024,
		},
		Preview: PreviewConfig{
			OutputPath: "preview.html",
			Title:      "Preview",
		},
		Workflow: WorkflowConfig{
			MaxIterations: 20,
		},
		Session: SessionConfig{
			Path: ".genui/session.json",
		},
	}
}
