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
		"jwt": map[string]any{
			"accessTokenTtl": "30m",
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
		{envKey: "JWT_ACCESSTOKENTTL", want: "jwt.accessTokenTtl"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.JWT.Issuer != "APIVeterinaria" {
		t.Fatalf("default issuer = %q", cfg.JWT.Issuer)
	}
	if cfg.JWT.Audience != "APIVeterinariaClient" {
		t.Fatalf("default audience = %q", cfg.JWT.Audience)
	}
	if cfg.Clinic.Timezone != "America/Bogota" {
		t.Fatalf("default timezone = %q", cfg.Clinic.Timezone)
	}
	if cfg.Pagination.DefaultPageSize != 50 {
		t.Fatalf("default page size = %d", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Auth.PasswordMinLength != 6 {
		t.Fatalf("default password min length = %d", cfg.Auth.PasswordMinLength)
	}
}
