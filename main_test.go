package main

import (
	"testing"

	"checkout-app/config"
)

func TestCorsConfigUsesConfiguredOrigin(t *testing.T) {
	orig := config.CORS_ORIGIN
	defer func() { config.CORS_ORIGIN = orig }()
	config.CORS_ORIGIN = "https://cards.example.com"

	cfg := corsConfig()

	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://cards.example.com" {
		t.Fatalf("expected allowed origins [https://cards.example.com], got %v", cfg.AllowOrigins)
	}
	if !cfg.AllowCredentials {
		t.Error("expected credentials to be allowed")
	}
}
