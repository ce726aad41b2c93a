package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable Load reads.
const EnvPrefix = "CLUSTERFIELD_"

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
// envFiles are dotenv files whose CLUSTERFIELD_* entries apply as if they were
// set in the environment; variables already in the process environment win.
// A path or env file that does not exist is an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	lookup := os.LookupEnv
	if len(envFiles) > 0 {
		fileEnv, err := godotenv.Read(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("config: read env files: %w", err)
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, envFiles...)
		lookup = func(key string) (string, bool) {
			if v, ok := os.LookupEnv(key); ok {
				return v, true
			}
			v, ok := fileEnv[key]
			return v, ok
		}
	}

	applied, err := cfg.loadEnv(lookup)
	if err != nil {
		return nil, err
	}
	if applied {
		cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := c.decodeYAML(f); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// decodeYAML overlays r onto c. Unknown keys are rejected; an empty document
// leaves c unchanged.
func (c *Config) decodeYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// loadEnv overlays CLUSTERFIELD_* variables. lookup is os.LookupEnv outside
// tests. It reports whether any variable was set.
func (c *Config) loadEnv(lookup func(string) (string, bool)) (bool, error) {
	applied := false
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		v = strings.TrimSpace(v)
		if ok && v != "" {
			applied = true
			return v, true
		}
		return "", false
	}

	if v, ok := get("GRID_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return applied, envError("GRID_SIZE", v, err)
		}
		c.Grid.Size = n
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return applied, envError("SEED", v, err)
		}
		c.Grid.Seed = n
	}
	if v, ok := get("OCCUPANCY"); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return applied, envError("OCCUPANCY", v, err)
		}
		c.Grid.Occupancy = p
	}
	if v, ok := get("POLICY"); ok {
		c.Grid.Policy = strings.ToLower(v)
	}
	if v, ok := get("CONNECTIVITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return applied, envError("CONNECTIVITY", v, err)
		}
		c.Grid.Connectivity = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = strings.ToLower(v)
	}
	return applied, nil
}

func envError(name, value string, err error) error {
	return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, name, value, err)
}
