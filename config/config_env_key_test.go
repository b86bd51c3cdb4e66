package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"biometric": map[string]any{
			"commandTimeout": "30s",
			"enrollment": map[string]any{
				"defaultTimeout": "60s",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BIOMETRIC_COMMANDTIMEOUT", want: "biometric.commandTimeout"},
		{envKey: "BIOMETRIC_ENROLLMENT_DEFAULTTIMEOUT", want: "biometric.enrollment.defaultTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestBiometricConfig_ApplyDefaults(t *testing.T) {
	var cfg BiometricConfig
	cfg.applyDefaults()

	if cfg.CommandTimeout.Seconds() != 30 {
		t.Fatalf("CommandTimeout = %v, want 30s", cfg.CommandTimeout)
	}
	if cfg.MaxReconnectAttempts != 5 {
		t.Fatalf("MaxReconnectAttempts = %d, want 5", cfg.MaxReconnectAttempts)
	}
	if cfg.Enrollment.DefaultTimeout.Seconds() != 60 {
		t.Fatalf("Enrollment.DefaultTimeout = %v, want 60s", cfg.Enrollment.DefaultTimeout)
	}
	if cfg.Enrollment.TimeoutGrace.Seconds() != 5 {
		t.Fatalf("Enrollment.TimeoutGrace = %v, want 5s", cfg.Enrollment.TimeoutGrace)
	}
}
