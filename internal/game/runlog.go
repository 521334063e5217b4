package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	WorldSeed         int64     `json:"world_seed"`
	Started           time.Time `json:"started"`
	DeepestDepth      int       `json:"deepest_depth"`
	Turns             int       `json:"turns"`
	Descents          int       `json:"descents"`
	Ascents           int       `json:"ascents"`
	FloorsGenerated   int       `json:"floors_generated"`
	FloorsLoaded      int       `json:"floors_loaded"`
	FailedTransitions int       `json:"failed_transitions"`
}

// SaveRunLog appends the session as a single JSON line to runs.jsonl in dir.
func SaveRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// DataDir returns where saves and run logs live by default:
// $XDG_DATA_HOME/deepfloor, or ~/.local/share/deepfloor.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "deepfloor"), nil
}
