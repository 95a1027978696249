// Package manifest describes how the module is packaged and which framework
// releases it installs against.
package manifest

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tartampluch/go-partytype/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed module.yaml
var moduleYAML []byte

// Manifest is the module descriptor.
type Manifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Email       string   `yaml:"email"`
	Website     string   `yaml:"website"`
	Depends     []string `yaml:"depends"`
	XML         []string `yaml:"xml"`
	Translation []string `yaml:"translation"`
}

var coreModule = regexp.MustCompile(config.CoreModulePattern)

// Load returns the embedded manifest.
func Load() (*Manifest, error) {
	return Parse(moduleYAML)
}

// Parse decodes a manifest. A missing version defaults to config.DefaultVersion.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrManifestRead, err)
	}
	if m.Version == "" {
		m.Version = config.DefaultVersion
	}
	if _, _, err := m.Series(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Series returns the major and minor numbers of the version.
func (m *Manifest) Series() (major, minor int, err error) {
	parts := strings.SplitN(m.Version, ".", 3)
	if len(parts) < 3 {
		return 0, 0, fmt.Errorf("%s: %q", config.ErrManifestVersion, m.Version)
	}
	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%s: %q: %w", config.ErrManifestVersion, m.Version, err)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%s: %q: %w", config.ErrManifestVersion, m.Version, err)
	}
	return major, minor, nil
}

// NextMinor is the first minor release outside this module's series. Odd
// minors are development series, so they skip one more.
func NextMinor(minor int) int {
	next := minor + 1
	if minor%2 != 0 {
		next++
	}
	return next
}

// Requires lists the install requirements: one pinned range per non-core
// dependency, then the framework itself.
func (m *Manifest) Requires() ([]string, error) {
	major, minor, err := m.Series()
	if err != nil {
		return nil, err
	}
	next := NextMinor(minor)

	var reqs []string
	for _, dep := range m.Depends {
		if coreModule.MatchString(dep) {
			continue
		}
		reqs = append(reqs, fmt.Sprintf(config.FormatRequirement,
			config.FrameworkName, dep, major, minor, major, next))
	}
	reqs = append(reqs, fmt.Sprintf(config.FormatFramework,
		config.FrameworkName, major, minor, major, next))
	return reqs, nil
}

// DownloadURL points at the release directory of the module's series.
func (m *Manifest) DownloadURL() string {
	series := m.Version
	if i := strings.LastIndex(series, "."); i >= 0 {
		series = series[:i]
	}
	return config.DownloadBaseURL + series + "/"
}

// PackageName is the distribution name of the module.
func (m *Manifest) PackageName() string {
	return config.FrameworkName + "_" + m.Name
}

// DataFiles lists the non-code files shipped with the module.
func (m *Manifest) DataFiles() []string {
	files := make([]string, 0, len(m.XML)+len(m.Translation))
	files = append(files, m.XML...)
	return append(files, m.Translation...)
}
