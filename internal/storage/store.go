// Package storage persists sampled animation runs: a metadata document plus
// a CSV of per-frame atom states, one directory per run.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/atomviz/internal/anim"
	"github.com/san-kum/atomviz/internal/export"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0o755)
}

// RunMetadata describes one saved sampling run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Program   string    `json:"program"`
	Machine   string    `json:"machine"`
	Timestamp time.Time `json:"timestamp"`
	Duration  float64   `json:"duration"`
	Atoms     int       `json:"atoms"`
	FPS       float64   `json:"fps"`
}

// Save samples the animator at the passed frame rate and writes a run
// directory containing metadata.json and frames.csv. Returns the run id.
func (s *Store) Save(program, machine string, a *anim.Animator, fps float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", program, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Program:   program,
		Machine:   machine,
		Timestamp: time.Now(),
		Duration:  a.Duration(),
		Atoms:     a.Atoms(),
		FPS:       fps,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	framesFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer framesFile.Close()
	if err := export.WriteCSV(framesFile, a, fps); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns the metadata of all saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads the metadata of one run.
func (s *Store) Load(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, fmt.Errorf("run %s: %w", runID, err)
	}
	return meta, nil
}
