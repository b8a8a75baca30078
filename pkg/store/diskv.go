// Package store keeps named picker profiles on disk and loads the CLI
// configuration.
package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const profilesBucket = "profiles"

// ErrProfileNotFound is returned when no profile has the requested name.
var ErrProfileNotFound = errors.New("store: profile not found")

// Persistence defines the storage contract for picker profiles.
type Persistence interface {
	Get(name string) (*Profile, error)
	Put(p *Profile) error
	Delete(name string) error
	List(ctx context.Context) []*Profile
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	}), basePath: basePath, now: time.Now}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

func (p *persistence) Get(name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store: profile name required")
	}
	key := toKey(name)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p.read(key)
}

func (p *persistence) read(key string) (*Profile, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	prof := &Profile{}
	if err := json.Unmarshal(val, prof); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", key, err)
	}
	if prof.Name == "" {
		prof.Name = fromKey(key)
	}
	return prof, nil
}

func (p *persistence) Put(prof *Profile) error {
	if prof == nil {
		return errors.New("store: nil profile")
	}
	prof.Name = strings.TrimSpace(prof.Name)
	if prof.Name == "" {
		return errors.New("store: profile name required")
	}
	if err := prof.Validate(); err != nil {
		return err
	}
	prof.Updated = p.now().UTC()
	data, err := json.MarshalIndent(prof, "", "  ")
	if err != nil {
		return err
	}
	return p.d.Write(toKey(prof.Name), data)
}

func (p *persistence) Delete(name string) error {
	key := toKey(strings.TrimSpace(name))
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p.d.Erase(key)
}

func (p *persistence) List(ctx context.Context) []*Profile {
	all := make([]*Profile, 0)
	for key := range p.d.KeysPrefix(profilesBucket+"-", ctx.Done()) {
		prof, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, prof)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) < 2 {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{parts[0]},
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `profiles-<encoded name>`.
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", profilesBucket, base64.RawURLEncoding.EncodeToString([]byte(name)))
}

func fromKey(key string) string {
	return fromFileName(keyToPathTransform(key).FileName)
}

func fromFileName(s string) string {
	name, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(name)
}
