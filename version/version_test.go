package version

import (
	"strings"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	info := Get("cropguard-service")

	if info.Service != "cropguard-service" {
		t.Errorf("Expected service cropguard-service, got %q", info.Service)
	}
	if info.Release != "dev" {
		t.Errorf("Expected default release dev, got %q", info.Release)
	}
	if info.GoVersion == "" {
		t.Error("Expected a non-empty go version")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Expected platform as os/arch, got %q", info.Platform)
	}
}

func TestGetPrefersLdflagsCommit(t *testing.T) {
	Commit = "abc1234"
	defer func() { Commit = "" }()

	if got := Get("cropguard-service").Commit; got != "abc1234" {
		t.Errorf("Expected ldflags commit abc1234, got %q", got)
	}
}
