package app

import (
	"testing"

	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/config"
)

func TestStartLink(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		last string
		want string
	}{
		{"root", Options{}, "", ""},
		{"last link", Options{}, "/composition/about", "/composition/about"},
		{"path args", Options{Path: []string{"products", "shoes"}}, "/composition/about", "/composition/products/shoes"},
		{"slash path", Options{Path: []string{"/products/shoes/"}}, "", "/composition/products/shoes"},
		{"blank path", Options{Path: []string{"/"}}, "/composition/about", "/composition/about"},
		{"id wins", Options{Path: []string{"about"}, CompositionID: "abc"}, "", "/composition?compositionId=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartLink(tt.opts, tt.last); got != tt.want {
				t.Fatalf("StartLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewService_InvalidHost(t *testing.T) {
	cfg := config.Config{APIKey: "key", ProjectID: "proj", APIHost: "://bad"}
	if _, err := NewService(cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for invalid host")
	}
}

func TestNewService_MissingCredentialsNotFatal(t *testing.T) {
	svc, err := NewService(config.Config{APIHost: "https://api.uniform.app"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if svc == nil {
		t.Fatalf("expected a service")
	}
}
