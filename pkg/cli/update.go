package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// Version is the running build's version, overridden at link time with
// -ldflags "-X .../pkg/cli.Version=x.y.z".
var Version = "0.1.0"

// UpdateRepo is the GitHub owner/name releases are fetched from.
const UpdateRepo = "rudrakrishna13062004-cmyk/Pixelforge--advanced-photo-editor"

type githubRelease struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	Assets     []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

var semverRe = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

// pickRelease returns the highest semver among published, non-prerelease
// releases. Tags that carry no semver fall back to the release name.
// Binary-looking assets (os or arch in the name) are preferred.
func pickRelease(releases []githubRelease) (*selfupdate.Release, bool) {
	type candidate struct {
		ver      semver.Version
		assetURL string
	}
	var candidates []candidate
	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			if match = semverRe.FindString(r.Name); match == "" {
				continue
			}
		}
		v, err := semver.Parse(strings.TrimPrefix(match, "v"))
		if err != nil {
			continue
		}
		assetURL := ""
		for _, a := range r.Assets {
			name := strings.ToLower(a.Name)
			if strings.Contains(name, "darwin") || strings.Contains(name, "linux") || strings.Contains(name, "windows") ||
				strings.Contains(name, "amd64") || strings.Contains(name, "arm64") {
				assetURL = a.BrowserDownloadURL
				break
			}
			if assetURL == "" {
				assetURL = a.BrowserDownloadURL
			}
		}
		candidates = append(candidates, candidate{ver: v, assetURL: assetURL})
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ver.GT(candidates[j].ver)
	})
	return &selfupdate.Release{Version: candidates[0].ver, AssetURL: candidates[0].assetURL}, true
}

// detectLatest queries the GitHub releases API for repo.
func detectLatest(client *http.Client, apiBase, repo string) (*selfupdate.Release, bool, error) {
	resp, err := client.Get(fmt.Sprintf("%s/repos/%s/releases", apiBase, repo))
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}
	var releases []githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}
	rel, ok := pickRelease(releases)
	return rel, ok, nil
}

// Updater checks GitHub for a newer release and replaces the running binary.
type Updater struct {
	Client  *http.Client
	APIBase string
	Repo    string
	In      io.Reader
	Out     io.Writer
	// Apply installs the asset over the executable; defaults to selfupdate.UpdateTo.
	Apply func(assetURL, exe string) error
}

// NewUpdater returns an Updater for UpdateRepo on the public GitHub API.
func NewUpdater(in io.Reader, out io.Writer) *Updater {
	return &Updater{
		Client:  &http.Client{Timeout: 10 * time.Second},
		APIBase: "https://api.github.com",
		Repo:    UpdateRepo,
		In:      in,
		Out:     out,
		Apply:   selfupdate.UpdateTo,
	}
}

// Run reports the current and latest versions and, after confirmation when
// assumeYes is false, installs the newer release.
func (u *Updater) Run(assumeYes bool) error {
	fmt.Fprintf(u.Out, "Current version: %s\n", Version)
	latest, found, err := detectLatest(u.Client, u.APIBase, u.Repo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found {
		fmt.Fprintf(u.Out, "No releases found for %s.\n", u.Repo)
		return nil
	}
	fmt.Fprintf(u.Out, "Latest version: %s\n", latest.Version)

	current, perr := semver.Parse(strings.TrimPrefix(Version, "v"))
	if perr != nil {
		fmt.Fprintf(u.Out, "warning: could not parse current version %q: %v\n", Version, perr)
	} else if latest.Version.LTE(current) {
		fmt.Fprintf(u.Out, "You are already running the latest version: %s.\n", current)
		return nil
	}
	if latest.AssetURL == "" {
		fmt.Fprintf(u.Out, "A new version (%s) is available but there is no downloadable asset.\n", latest.Version)
		return nil
	}

	if !assumeYes {
		fmt.Fprintf(u.Out, "A new version (%s) is available. Update now? (y/N): ", latest.Version)
		answer, err := bufio.NewReader(u.In).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed reading input: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(u.Out, "Update cancelled.")
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	fmt.Fprintln(u.Out, "Updating...")
	if err := u.Apply(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(u.Out, "Updated to version %s. Restart pixelforge to use it.\n", latest.Version)
	return nil
}
