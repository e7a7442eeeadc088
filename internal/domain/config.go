package domain

import "time"

// Config mirrors ~/.shellmate/config.yaml. It is loaded once at process start
// and passed by value; nothing mutates it afterwards.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Backend             BackendSettings   `yaml:"backend"`
	Preferences         Preferences       `yaml:"preferences"`
	Execution           ExecutionSettings `yaml:"execution"`
}

// BackendSettings describe the command-generation endpoint.
type BackendSettings struct {
	Endpoint       string        `yaml:"endpoint"`
	APIKey         string        `yaml:"api_key,omitempty"`
	TimeoutSeconds int           `yaml:"timeout"`
	Retry          RetrySettings `yaml:"retry"`
}

// RetrySettings bound the retry loop around backend calls.
type RetrySettings struct {
	MaxAttempts        int `yaml:"max_attempts"`
	BackoffBaseSeconds int `yaml:"backoff_base"`
}

// Preferences captures user level toggles.
type Preferences struct {
	ShowPrompt bool `yaml:"show_prompt"`
	Verbose    bool `yaml:"verbose"`
}

// ExecutionSettings controls how confirmed commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell"`
}

// Timeout returns the per-call request timeout.
func (b BackendSettings) Timeout() time.Duration {
	if b.TimeoutSeconds <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// Attempts returns the bounded attempt count.
func (r RetrySettings) Attempts() int {
	if r.MaxAttempts <= 0 {
		return DefaultRetryAttempts
	}
	return r.MaxAttempts
}

// BackoffBase returns the first backoff delay; subsequent delays double.
func (r RetrySettings) BackoffBase() time.Duration {
	if r.BackoffBaseSeconds <= 0 {
		return DefaultBackoffBase
	}
	return time.Duration(r.BackoffBaseSeconds) * time.Second
}
