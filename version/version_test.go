package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Name != SDKName {
		t.Errorf("expected name %q, got %q", SDKName, info.Name)
	}
	if info.Version == "" {
		t.Error("expected a version")
	}
	if info.Version == "dev" && info.IsRelease {
		t.Error("dev builds must not report as releases")
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Name: "authkit", Version: "1.2.0"}
	if info.String() != "authkit 1.2.0" {
		t.Errorf("unexpected string: %q", info.String())
	}

	info.GitCommit = "abc1234"
	if !strings.Contains(info.String(), "abc1234") {
		t.Errorf("expected commit in string: %q", info.String())
	}
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	if !strings.HasPrefix(ua, SDKName+"/") {
		t.Errorf("expected user agent to start with %q, got %q", SDKName+"/", ua)
	}
}
