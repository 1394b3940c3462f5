package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// SaveAtomic validates, then writes tmp + bak + rename so a crash never
// leaves a half-written config. A sibling lock file serializes concurrent
// savers (CLI run vs. serve-mode PUT).
func SaveAtomic(path string, cfg Config) error {
	normalized, vr := NormalizeAndValidate(cfg)
	if !vr.OK() {
		return errors.New("config validation failed: " + joinLines(vr.Errors))
	}

	b, err := yaml.Marshal(&normalized)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
