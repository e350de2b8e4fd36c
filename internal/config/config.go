// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// EnvFile names the environment variable holding an explicit config file
// path.
const EnvFile = "AWSCTL_CFG_FILE"

// FileName is the config file name looked up in the user config directory.
// The home directory is searched for a dotted variant.
const FileName = "awsctl.yaml"

// ErrNotFound is returned by the getters for keys absent from the config.
var ErrNotFound = errors.New("key not found")

// Type is a loaded config file. Keys are dotted paths into Data. When
// Namespace is set, "<Namespace>.<key>" is tried before "<key>", so a
// redshift-serverless section overrides top level settings for that service.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process wide configuration.
var Config Type

func init() {
	_, _ = Load()
}

// Load reads the config file into Config. An explicit path wins over
// AWSCTL_CFG_FILE, which wins over the standard locations.
func Load(path ...string) (Type, error) {
	file := ""
	if len(path) == 1 {
		file = path[0]
	}
	if file == "" {
		var err error
		if file, err = locate(); err != nil {
			return Type{}, err
		}
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}

	Config = Type{Source: file, Namespace: Config.Namespace, Data: data}
	log.Debugf("config loaded: source=%s keys=%d", file, len(data))
	return Config, nil
}

// Path returns the file Load would read, or "" when there is none.
func Path() string {
	if Config.Source != "" {
		return Config.Source
	}
	file, err := locate()
	if err != nil {
		return ""
	}
	return file
}

// locate finds the config file: AWSCTL_CFG_FILE, then
// <user config dir>/awsctl.yaml, then ~/.awsctl.yaml.
func locate() (string, error) {
	if env := os.Getenv(EnvFile); env != "" {
		fi, err := os.Stat(env)
		switch {
		case err != nil:
			return "", fmt.Errorf("config file not found at %s path: %s", EnvFile, env)
		case fi.IsDir():
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, env)
		}
		return env, nil
	}

	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+FileName))
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("no config file found in %v", candidates)
}

// get returns the value at key, trying the namespaced key first.
func (cfg *Type) get(key string) (any, error) {
	keys := []string{key}
	if cfg.Namespace != "" {
		keys = []string{cfg.Namespace + "." + key, key}
	}

	for _, k := range keys {
		if v, ok := walk(cfg.Data, strings.Split(k, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: no valid path found among %v", ErrNotFound, keys)
}

func walk(node any, parts []string) (any, bool) {
	for _, p := range parts {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = m[p]; !ok {
			return nil, false
		}
	}
	return node, true
}

// typed looks key up and converts it. A missing key yields the single default
// when exactly one is given.
func typed[T any](key string, defaults []T, convert func(any) (T, error)) (T, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	var zero T
	v, err := Config.get(key)
	if err != nil {
		if len(defaults) == 1 {
			return defaults[0], nil
		}
		return zero, err
	}

	out, err := convert(v)
	if err != nil {
		return zero, fmt.Errorf("config key %s: %w", key, err)
	}
	return out, nil
}

// GetBool returns a boolean. yes/no and on/off are accepted besides the
// forms strconv.ParseBool knows.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	return typed(key, defaultValue, func(v any) (bool, error) {
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			switch strings.ToLower(b) {
			case "yes", "on":
				return true, nil
			case "no", "off":
				return false, nil
			}
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed, nil
			}
		}
		return false, fmt.Errorf("%v is not a bool", v)
	})
}

// GetInt returns an integer. Fractional YAML numbers are truncated.
func GetInt(key string, defaultValue ...int) (int, error) {
	return typed(key, defaultValue, func(v any) (int, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			return int(n), nil
		}
		return 0, fmt.Errorf("%v is not an int", v)
	})
}

// GetString returns a string.
func GetString(key string, defaultValue ...string) (string, error) {
	return typed(key, defaultValue, func(v any) (string, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return "", fmt.Errorf("%v is not a string", v)
	})
}

// GetStringSlice returns a list of strings. A single string is a one element
// list.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	return typed(key, defaultValue, func(v any) ([]string, error) {
		switch s := v.(type) {
		case string:
			return []string{s}, nil
		case []interface{}:
			out := make([]string, len(s))
			for i, item := range s {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("element %d (%v) is not a string", i, item)
				}
				out[i] = str
			}
			return out, nil
		}
		return nil, fmt.Errorf("%v is not a list", v)
	})
}
