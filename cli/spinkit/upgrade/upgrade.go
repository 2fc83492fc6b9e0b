package upgrade

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
	"github.com/google/go-github/v62/github"
	"github.com/loilo-inc/spinkit/types"
	"github.com/minio/selfupdate"
	"golang.org/x/xerrors"
)

const (
	repoOwner = "loilo-inc"
	repoName  = "spinkit"
)

type upgrader struct {
	client *github.Client
}

var _ types.Upgrader = (*upgrader)(nil)

func NewUpgrader() types.Upgrader {
	return &upgrader{client: github.NewClient(nil)}
}

func (u *upgrader) Upgrade(p *types.UpgradeInput) error {
	ctx := context.Background()
	log.Infof("checking for updates...")
	releases, _, err := u.client.Repositories.ListReleases(ctx, repoOwner, repoName, nil)
	if err != nil {
		return err
	}
	latestRelease := findLatestRelease(releases, p.PreRelease)
	if latestRelease == nil {
		return xerrors.Errorf("failed to find latest release")
	}
	version := latestRelease.GetTagName()
	log.Infof("latest release: %s", version)
	latestVer := semver.MustParse(version)
	// a current version that isn't semver, such as "dev", is always upgraded
	if currVer, err := semver.NewVersion(p.CurrentVersion); err == nil {
		if !latestVer.GreaterThan(currVer) {
			log.Info("no updates available")
			return nil
		}
	}
	log.Infof("upgrading from %s to %s", p.CurrentVersion, version)
	checksumAssetName := fmt.Sprintf("%s_%s_checksums.txt", repoName, version)
	binaryAssetName := fmt.Sprintf("%s_%s_%s.zip", repoName, runtime.GOOS, runtime.GOARCH)
	var checksumAsset, binaryAsset *github.ReleaseAsset
	for _, asset := range latestRelease.Assets {
		switch asset.GetName() {
		case checksumAssetName:
			checksumAsset = asset
		case binaryAssetName:
			binaryAsset = asset
		}
	}
	if checksumAsset == nil || binaryAsset == nil {
		return xerrors.Errorf("failed to find assets for version %s", version)
	}
	log.Info("downloading checksums...")
	checksums, err := parseChecksums(checksumAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	checksum, ok := checksums[binaryAsset.GetName()]
	if !ok {
		return xerrors.Errorf("failed to find checksum for %s", binaryAsset.GetName())
	}
	sum, err := hex.DecodeString(checksum)
	if err != nil {
		return xerrors.Errorf("invalid checksum for %s: %w", binaryAsset.GetName(), err)
	}
	log.Infof("downloading binary %s...", binaryAsset.GetName())
	resp, err := http.DefaultClient.Get(binaryAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return xerrors.Errorf("failed to download %s: %s", binaryAsset.GetName(), resp.Status)
	}
	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if actual := sha256.Sum256(archive); !bytes.Equal(actual[:], sum) {
		return xerrors.Errorf("checksum mismatch for %s", binaryAsset.GetName())
	}
	binary, err := extractBinary(archive)
	if err != nil {
		return err
	}
	defer binary.Close()
	log.Infof("upgrading to %s", version)
	return selfupdate.Apply(binary, selfupdate.Options{
		TargetPath: p.TargetPath,
	})
}

// extractBinary opens the spinkit executable inside a release archive.
func extractBinary(archive []byte) (io.ReadCloser, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, xerrors.Errorf("failed to open archive: %w", err)
	}
	for _, f := range r.File {
		name := filepath.Base(f.Name)
		if name == repoName || name == repoName+".exe" {
			return f.Open()
		}
	}
	return nil, xerrors.Errorf("%s binary not found in archive", repoName)
}

// findLatestRelease returns the first semver-tagged release, skipping
// pre-releases unless they are allowed. Releases are listed newest first.
func findLatestRelease(releases []*github.RepositoryRelease, preRelease bool) *github.RepositoryRelease {
	for _, release := range releases {
		if _, err := semver.NewVersion(release.GetTagName()); err != nil {
			continue
		}
		if !release.GetPrerelease() || preRelease {
			return release
		}
	}
	return nil
}

func parseChecksums(url string) (map[string]string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	sums := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "  ")
		if len(parts) != 2 {
			return nil, xerrors.Errorf("invalid checksum line: %s", line)
		}
		sums[parts[1]] = parts[0]
	}
	return sums, nil
}
