package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "PANELGRID_"

var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds runtime settings shared by the apps. Authoring data lives in
// the prefab files, not here.
type Config struct {
	Workers   int
	ChunkSize int
	Width     int
	Height    int
	TPS       int

	PrefabDir string
	Placer    string
	Coloring  string
	Watch     bool

	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		Width:     1280,
		Height:    720,
		TPS:       60,
		PrefabDir: "prefabs",
		Placer:    "placer.yaml",
		Coloring:  "coloring.yaml",
		Watch:     true,
		LogLevel:  "info",
	}
}

// Load starts from Default, applies the given .env files (".env" when none
// are given; missing files are skipped) and then PANELGRID_* environment
// variables. Process environment wins over .env files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	fileEnv := map[string]string{}
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
		for k, v := range vals {
			fileEnv[k] = v
		}
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

// FromEnv applies PANELGRID_* values found through lookup on top of Default.
// Only malformed values fail here; range checks wait for Validate so flags
// can still override them.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"WORKERS", &c.Workers},
		{"CHUNK_SIZE", &c.ChunkSize},
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"TPS", &c.TPS},
	}
	for _, f := range ints {
		v, ok := lookup(envPrefix + f.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, envPrefix, f.key, v)
		}
		*f.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"PREFAB_DIR", &c.PrefabDir},
		{"PLACER", &c.Placer},
		{"COLORING", &c.Coloring},
		{"LOG_LEVEL", &c.LogLevel},
		{"LOG_FILE", &c.LogFile},
	}
	for _, f := range strs {
		if v, ok := lookup(envPrefix + f.key); ok {
			*f.dst = v
		}
	}

	if v, ok := lookup(envPrefix + "WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %sWATCH=%q", ErrInvalidConfig, envPrefix, v)
		}
		c.Watch = b
	}

	return c, nil
}

// BindFlags registers command-line overrides for every field, using the
// current values as defaults.
func (c *Config) BindFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Workers, "workers", c.Workers, "parallel dispatch worker count")
	flags.IntVar(&c.ChunkSize, "chunk", c.ChunkSize, "entities per parallel job (0 = automatic)")
	flags.IntVar(&c.Width, "width", c.Width, "window width")
	flags.IntVar(&c.Height, "height", c.Height, "window height")
	flags.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	flags.StringVar(&c.PrefabDir, "prefabs", c.PrefabDir, "prefab override directory (empty = embedded only)")
	flags.StringVar(&c.Placer, "placer", c.Placer, "placer prefab file")
	flags.StringVar(&c.Coloring, "coloring", c.Coloring, "coloring prefab file")
	flags.BoolVar(&c.Watch, "watch", c.Watch, "hot reload the coloring prefab")
	flags.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&c.LogFile, "logfile", c.LogFile, "write logs to this file with rotation")
}

func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.ChunkSize < 0:
		return fmt.Errorf("%w: chunk size must not be negative, got %d", ErrInvalidConfig, c.ChunkSize)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}
