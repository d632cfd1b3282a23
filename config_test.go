package bullsbears

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "base url blank invalid",
			mutate: func(c *Config) {
				c.API.BaseURL = "   "
			},
			wantValid: false,
		},
		{
			name: "base url scheme invalid",
			mutate: func(c *Config) {
				c.API.BaseURL = "ftp://example.com"
			},
			wantValid: false,
		},
		{
			name: "http base url valid",
			mutate: func(c *Config) {
				c.API.BaseURL = "http://localhost:3000"
			},
			wantValid: true,
		},
		{
			name: "negative timeout invalid",
			mutate: func(c *Config) {
				c.API.RequestTimeout = -time.Second
			},
			wantValid: false,
		},
		{
			name: "login path blank invalid",
			mutate: func(c *Config) {
				c.Session.LoginPath = ""
			},
			wantValid: false,
		},
		{
			name: "login path relative invalid",
			mutate: func(c *Config) {
				c.Session.LoginPath = "login"
			},
			wantValid: false,
		},
		{
			name: "audit enabled without buffer invalid",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.BufferSize = 0
			},
			wantValid: false,
		},
		{
			name: "audit disabled ignores buffer",
			mutate: func(c *Config) {
				c.Audit.Enabled = false
				c.Audit.BufferSize = 0
			},
			wantValid: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantValid && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tc.wantValid && err == nil {
				t.Fatal("expected invalid config, got nil")
			}
		})
	}
}

func TestDefaultConfigBaseURL(t *testing.T) {
	t.Setenv(baseURLEnvVar, "")
	if got := DefaultConfig().API.BaseURL; got != defaultBaseURL {
		t.Fatalf("expected deployed origin, got %q", got)
	}

	t.Setenv(baseURLEnvVar, "http://localhost:9999")
	if got := DefaultConfig().API.BaseURL; got != "http://localhost:9999" {
		t.Fatalf("expected env override, got %q", got)
	}
}

func TestDefaultConfigHasNoRequestTimeout(t *testing.T) {
	if got := DefaultConfig().API.RequestTimeout; got != 0 {
		t.Fatalf("expected no default timeout, got %v", got)
	}
}
