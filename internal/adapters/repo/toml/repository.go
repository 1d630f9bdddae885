package toml

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/bnema/tabsweep/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".tabsweep"
	stateFileName   = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Repository stores settings, pins, countdowns and the closed-tab archive in a single TOML
// document. Every write re-reads the document and replaces only its own section.
type Repository struct {
	statePath string
	mu        *sync.RWMutex
	lastWrite *writeDigest
}

// writeDigest remembers the checksum of the last document this process wrote to a path.
type writeDigest struct {
	mu  sync.Mutex
	sum []byte
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
	pathDigestMap  = map[string]*writeDigest{}
)

var (
	_ ports.SettingsRepository  = (*Repository)(nil)
	_ ports.PinRepository       = (*Repository)(nil)
	_ ports.CountdownRepository = (*Repository)(nil)
	_ ports.ArchiveRepository   = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(StatePathKey, filepath.Join(homeDir, stateConfigDir, stateFileName))

	statePath := cfg.GetString(StatePathKey)
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}
	statePath, err = normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Repository{
		statePath: statePath,
		mu:        lockForPath(statePath),
		lastWrite: digestForPath(statePath),
	}, nil
}

// Path is the absolute location of the state document.
func (r *Repository) Path() string {
	return r.statePath
}

// IsOwnWrite reports whether the document on disk is exactly the one this process last wrote.
// A missing file or one never written by this process is not an own write.
func (r *Repository) IsOwnWrite() (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read state file: %w", err)
	}

	sum := sha256.Sum256(data)
	return r.lastWrite.matches(sum[:]), nil
}

func (r *Repository) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	var (
		settings domain.Settings
		found    bool
	)
	err := r.view(ctx, func(file fileSchema) error {
		if file.Settings == nil {
			return nil
		}
		limit, err := time.ParseDuration(file.Settings.InactivityLimit)
		if err != nil {
			return fmt.Errorf("decode inactivity limit: %w", err)
		}
		settings = domain.Settings{InactivityLimit: limit, MaxTabs: file.Settings.MaxTabs}
		found = true
		return nil
	})

	return settings, found, err
}

func (r *Repository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return r.update(ctx, func(file *fileSchema) {
		file.Settings = &settingsSchema{
			InactivityLimit: settings.InactivityLimit.String(),
			MaxTabs:         settings.MaxTabs,
		}
	})
}

func (r *Repository) LoadPins(ctx context.Context) (map[domain.TabID]bool, error) {
	pins := map[domain.TabID]bool{}
	err := r.view(ctx, func(file fileSchema) error {
		for id, pinned := range file.Pins {
			pins[domain.TabID(id)] = pinned
		}
		return nil
	})

	return pins, err
}

func (r *Repository) SavePins(ctx context.Context, pins map[domain.TabID]bool) error {
	return r.update(ctx, func(file *fileSchema) {
		file.Pins = make(map[string]bool, len(pins))
		for id, pinned := range pins {
			if pinned {
				file.Pins[string(id)] = true
			}
		}
	})
}

func (r *Repository) LoadCountdowns(ctx context.Context) ([]domain.Countdown, error) {
	var countdowns []domain.Countdown
	err := r.view(ctx, func(file fileSchema) error {
		countdowns = make([]domain.Countdown, 0, len(file.Countdowns))
		for _, entry := range file.Countdowns {
			remaining, err := time.ParseDuration(entry.Remaining)
			if err != nil {
				return fmt.Errorf("decode countdown for tab %s: %w", entry.TabID, err)
			}
			countdowns = append(countdowns, domain.Countdown{
				TabID:      domain.TabID(entry.TabID),
				Title:      entry.Title,
				URL:        entry.URL,
				Remaining:  remaining,
				Warned:     entry.Warned,
				ComputedAt: parseTime(entry.ComputedAt),
			})
		}
		return nil
	})

	return countdowns, err
}

func (r *Repository) SaveCountdowns(ctx context.Context, countdowns []domain.Countdown) error {
	return r.update(ctx, func(file *fileSchema) {
		file.Countdowns = make([]countdownSchema, 0, len(countdowns))
		for _, countdown := range countdowns {
			file.Countdowns = append(file.Countdowns, countdownSchema{
				TabID:      string(countdown.TabID),
				Title:      countdown.Title,
				URL:        countdown.URL,
				Remaining:  countdown.Remaining.String(),
				Warned:     countdown.Warned,
				ComputedAt: formatTime(countdown.ComputedAt),
			})
		}
	})
}

func (r *Repository) Append(ctx context.Context, entries []domain.ClosedEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.update(ctx, func(file *fileSchema) {
		known := make(map[string]bool, len(file.Archive))
		for _, entry := range file.Archive {
			known[entry.ID] = true
		}
		for _, entry := range entries {
			if known[entry.ID] {
				continue
			}
			file.Archive = append(file.Archive, toClosedEntrySchema(entry))
		}
	})
}

func (r *Repository) List(ctx context.Context) ([]domain.ClosedEntry, error) {
	var entries []domain.ClosedEntry
	err := r.view(ctx, func(file fileSchema) error {
		entries = make([]domain.ClosedEntry, 0, len(file.Archive))
		for _, entry := range file.Archive {
			entries = append(entries, fromClosedEntrySchema(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	domain.SortClosedEntries(entries)
	return entries, nil
}

func (r *Repository) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0
	err := r.update(ctx, func(file *fileSchema) {
		kept := file.Archive[:0]
		for _, entry := range file.Archive {
			if parseTime(entry.TimeClosed).Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, entry)
		}
		file.Archive = kept
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

func (r *Repository) Clear(ctx context.Context) error {
	return r.update(ctx, func(file *fileSchema) {
		file.Archive = nil
	})
}

func (r *Repository) view(ctx context.Context, fn func(file fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	return fn(file)
}

func (r *Repository) update(ctx context.Context, fn func(file *fileSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	fn(&file)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func digestForPath(path string) *writeDigest {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if digest, ok := pathDigestMap[path]; ok {
		return digest
	}

	digest := &writeDigest{}
	pathDigestMap[path] = digest
	return digest
}

func (d *writeDigest) record(sum []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sum = sum
}

func (d *writeDigest) matches(sum []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sum != nil && bytes.Equal(d.sum, sum)
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	sum := sha256.Sum256(data)
	r.lastWrite.record(sum[:])

	if err := os.Chmod(r.statePath, stateFileMode); err != nil {
		return fmt.Errorf("chmod state file: %w", err)
	}

	return nil
}

func toClosedEntrySchema(entry domain.ClosedEntry) closedEntrySchema {
	return closedEntrySchema{
		ID:         entry.ID,
		TabID:      string(entry.TabID),
		Title:      entry.Title,
		URL:        entry.URL,
		FavIconURL: entry.FavIconURL,
		TimeClosed: formatTime(entry.TimeClosed),
	}
}

func fromClosedEntrySchema(entry closedEntrySchema) domain.ClosedEntry {
	return domain.ClosedEntry{
		ID:         entry.ID,
		TabID:      domain.TabID(entry.TabID),
		Title:      entry.Title,
		URL:        entry.URL,
		FavIconURL: entry.FavIconURL,
		TimeClosed: parseTime(entry.TimeClosed),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
