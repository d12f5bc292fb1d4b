package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Jaron-S/body-fat-calculator/internal/bodyfat"
	"github.com/Jaron-S/body-fat-calculator/internal/utils"
	"github.com/google/uuid"
)

const profileFileName = "profile.json"

// ErrNotFound is returned when a profile directory has no profile.json.
var ErrNotFound = errors.New("profile not found")

// ErrNoSnapshots is returned by Last for an empty history.
var ErrNoSnapshots = errors.New("profile has no snapshots")

// Profile is a named measurement history persisted on disk.
type Profile struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	DefaultGender bodyfat.Gender `json:"default_gender,omitempty"`
	Snapshots     []*Snapshot    `json:"snapshots"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Not serialized: on-disk location of the profile.json
	rootDir string `json:"-"`
}

// New constructs an in-memory profile. Call Save() to persist.
func New(name, description, rootDir string) *Profile {
	now := time.Now()
	return &Profile{
		Name:        name,
		Description: description,
		Snapshots:   []*Snapshot{},
		CreatedAt:   now,
		UpdatedAt:   now,
		rootDir:     rootDir,
	}
}

// ValidName reports whether name is usable as a profile directory.
func ValidName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return errors.New("profile name is required")
	}
	if n != name || strings.ContainsAny(n, `/\`) || n == "." || n == ".." {
		return fmt.Errorf("invalid profile name %q", name)
	}
	return nil
}

// Dir returns the directory of the named profile under base.
func Dir(base, name string) string {
	return filepath.Join(base, name)
}

// Load reads profile.json from the provided directory.
func Load(dir string) (*Profile, error) {
	path := filepath.Join(dir, profileFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	p.rootDir = dir
	return &p, nil
}

// RootDir returns the on-disk profile directory path.
func (p *Profile) RootDir() string { return p.rootDir }

// Save writes profile.json using atomic write.
func (p *Profile) Save() error {
	if p.rootDir == "" {
		return errors.New("profile root directory not set")
	}
	if err := utils.EnsureDir(p.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	p.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(p)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(p.rootDir, profileFileName), data)
}

// AddSnapshot records an input and its result.
func (p *Profile) AddSnapshot(in bodyfat.Input, res bodyfat.Result) *Snapshot {
	s := &Snapshot{
		ID:         uuid.NewString(),
		RecordedAt: time.Now(),
		Input:      in,
		Result:     res,
	}
	p.Snapshots = append(p.Snapshots, s)
	p.UpdatedAt = s.RecordedAt
	return s
}

// Last returns the most recent snapshot.
func (p *Profile) Last() (*Snapshot, error) {
	if len(p.Snapshots) == 0 {
		return nil, ErrNoSnapshots
	}
	return p.Snapshots[len(p.Snapshots)-1], nil
}

// List loads every profile under base, sorted by name. A missing base
// directory yields an empty list.
func List(base string) ([]*Profile, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profiles dir: %w", err)
	}
	var out []*Profile
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p, err := Load(filepath.Join(base, e.Name()))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
