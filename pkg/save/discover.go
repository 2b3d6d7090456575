package save

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Info describes one save file found under the game's save root.
type Info struct {
	SteamID  string // profile directory name
	Name     string // save file name without extension
	Path     string
	Modified time.Time
}

// DefaultRoot returns the game's save directory:
// %APPDATA%/Glaiel Games/Mewgenics. Falls back to the user config
// directory when APPDATA is unset (non-Windows machines, mostly
// useful for inspecting copied saves).
func DefaultRoot() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			base = dir
		}
	}
	return filepath.Join(base, "Glaiel Games", "Mewgenics")
}

// DiscoverSaves scans root for <profile>/saves/*.sav files, newest
// first. A missing root yields an empty list, not an error.
func DiscoverSaves(root string) ([]Info, error) {
	profiles, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var saves []Info
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}

		savesDir := filepath.Join(root, profile.Name(), "saves")
		files, err := os.ReadDir(savesDir)
		if err != nil {
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".sav") {
				continue
			}
			info, err := f.Info()
			if err != nil {
				continue
			}
			saves = append(saves, Info{
				SteamID:  profile.Name(),
				Name:     strings.TrimSuffix(f.Name(), ".sav"),
				Path:     filepath.Join(savesDir, f.Name()),
				Modified: info.ModTime(),
			})
		}
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].Modified.After(saves[j].Modified)
	})
	return saves, nil
}
