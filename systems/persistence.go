package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedState is the player progress and window settings stored on disk
type SavedState struct {
	LevelIndex int  `json:"levelIndex"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for saved-state storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "boxkid",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadState loads saved state from disk; nil with no error means no save yet
func LoadState() (*SavedState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("state")
	if err != nil {
		log.Printf("Warning: Could not load saved state: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var state SavedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved state: %v", err)
		return nil, err
	}

	return &state, nil
}

// SaveState saves state to disk
func SaveState(s *SavedState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize state: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("state", data); err != nil {
		log.Printf("Warning: Could not save state: %v", err)
		return err
	}
	return nil
}

// UpdateState loads the saved state, applies mut, and writes it back.
// Starts from a zero state when nothing has been saved yet.
func UpdateState(mut func(*SavedState)) {
	s, err := LoadState()
	if err != nil || s == nil {
		s = &SavedState{}
	}
	mut(s)
	_ = SaveState(s)
}
