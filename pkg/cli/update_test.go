package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func release(tag string, assets ...string) githubRelease {
	r := githubRelease{TagName: tag}
	for _, a := range assets {
		r.Assets = append(r.Assets, struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		}{Name: a, BrowserDownloadURL: "https://example.invalid/" + a})
	}
	return r
}

func TestPickRelease(t *testing.T) {
	draft := release("v9.0.0", "pixelforge_linux_amd64")
	draft.Draft = true
	pre := release("v8.0.0", "pixelforge_linux_amd64")
	pre.Prerelease = true
	named := githubRelease{TagName: "latest", Name: "Release 1.4.0"}

	rel, ok := pickRelease([]githubRelease{
		release("v1.2.0", "checksums.txt", "pixelforge_linux_amd64.tar.gz"),
		release("v1.10.0", "notes.txt", "pixelforge_darwin_arm64.tar.gz"),
		draft, pre, named,
		release("nightly"),
	})
	if !ok {
		t.Fatal("expected a release")
	}
	if rel.Version.String() != "1.10.0" {
		t.Fatalf("got version %s, want 1.10.0", rel.Version)
	}
	if !strings.HasSuffix(rel.AssetURL, "pixelforge_darwin_arm64.tar.gz") {
		t.Fatalf("binary asset should be preferred, got %s", rel.AssetURL)
	}

	if _, ok := pickRelease([]githubRelease{draft, pre, release("nightly")}); ok {
		t.Fatal("expected no usable release")
	}
}

func newReleaseServer(t *testing.T, releases []githubRelease) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/releases" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(releases)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	old := Version
	Version = v
	t.Cleanup(func() { Version = old })
}

func TestUpdaterRunConfirm(t *testing.T) {
	withVersion(t, "1.0.0")
	srv := newReleaseServer(t, []githubRelease{release("v1.1.0", "pixelforge_linux_amd64")})

	var applied string
	var out bytes.Buffer
	u := &Updater{
		Client:  srv.Client(),
		APIBase: srv.URL,
		Repo:    "owner/repo",
		In:      strings.NewReader("y\n"),
		Out:     &out,
		Apply: func(url, exe string) error {
			applied = url
			return nil
		},
	}
	if err := u.Run(false); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasSuffix(applied, "pixelforge_linux_amd64") {
		t.Fatalf("apply not called with asset, got %q", applied)
	}
	if !strings.Contains(out.String(), "Updated to version 1.1.0") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestUpdaterRunDeclineAndCurrent(t *testing.T) {
	withVersion(t, "1.0.0")
	srv := newReleaseServer(t, []githubRelease{release("v1.1.0", "pixelforge_linux_amd64")})
	called := false
	u := &Updater{
		Client: srv.Client(), APIBase: srv.URL, Repo: "owner/repo",
		In: strings.NewReader("n\n"), Out: &bytes.Buffer{},
		Apply: func(string, string) error { called = true; return nil },
	}
	if err := u.Run(false); err != nil || called {
		t.Fatalf("decline: err=%v called=%v", err, called)
	}

	withVersion(t, "v1.1.0")
	var out bytes.Buffer
	u.Out = &out
	if err := u.Run(true); err != nil || called {
		t.Fatalf("current: err=%v called=%v", err, called)
	}
	if !strings.Contains(out.String(), "already running the latest") {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestUpdaterRunAPIError(t *testing.T) {
	u := &Updater{
		Client: http.DefaultClient, APIBase: newReleaseServer(t, nil).URL, Repo: "missing/repo",
		In: strings.NewReader(""), Out: &bytes.Buffer{},
	}
	if err := u.Run(true); err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected 404 error, got %v", err)
	}
}
