package arbor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// NodeSettings is the persisted state for one node: its identity and last
// known canvas location. WasUsed marks entries touched during the current
// load/save cycle so stale entries can be pruned by the store.
type NodeSettings struct {
	ID       int
	Location Vec2
	WasUsed  bool
}

// Settings is the engine's entire persisted state: per-node locations plus
// the view scroll and zoom. Dirty is monotone-set by any mutation and cleared
// only when the store flushes.
type Settings struct {
	Dirty bool

	Nodes      []NodeSettings
	ViewScroll Vec2
	ViewZoom   float64
}

func (s *Settings) markDirty() { s.Dirty = true }

// findNode returns the entry for id, or nil.
func (s *Settings) findNode(id int) *NodeSettings {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// addNode returns the entry for id, creating it if missing. Creation marks
// the settings dirty.
func (s *Settings) addNode(id int) *NodeSettings {
	if ns := s.findNode(id); ns != nil {
		return ns
	}
	s.Nodes = append(s.Nodes, NodeSettings{ID: id})
	s.markDirty()
	return &s.Nodes[len(s.Nodes)-1]
}

// SettingsStore is the external persistence collaborator. Load runs once at
// context construction; Save runs whenever the frame ends with Settings.Dirty
// set, after which the engine clears the flag.
type SettingsStore interface {
	Load() (*Settings, error)
	Save(*Settings) error
}

// storedSettings is the JSON file layout.
type storedSettings struct {
	Nodes []storedNode `json:"nodes"`
	View  storedView   `json:"view"`
}

type storedNode struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type storedView struct {
	ScrollX float64 `json:"scrollX"`
	ScrollY float64 `json:"scrollY"`
	Zoom    float64 `json:"zoom"`
}

// FileStore persists Settings as a JSON file. A missing file loads as empty
// settings rather than an error, so first runs need no setup.
type FileStore struct {
	Path string
}

// Load reads and decodes the settings file.
func (fs *FileStore) Load() (*Settings, error) {
	data, err := os.ReadFile(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{ViewZoom: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", fs.Path, err)
	}
	s := &Settings{
		ViewScroll: Vec2{stored.View.ScrollX, stored.View.ScrollY},
		ViewZoom:   stored.View.Zoom,
	}
	if s.ViewZoom <= 0 {
		s.ViewZoom = 1
	}
	for _, n := range stored.Nodes {
		s.Nodes = append(s.Nodes, NodeSettings{ID: n.ID, Location: Vec2{n.X, n.Y}})
	}
	return s, nil
}

// Save writes the settings file, creating parent directories as needed.
// Entries never marked used since load are pruned.
func (fs *FileStore) Save(s *Settings) error {
	stored := storedSettings{
		View: storedView{
			ScrollX: s.ViewScroll.X,
			ScrollY: s.ViewScroll.Y,
			Zoom:    s.ViewZoom,
		},
	}
	for _, n := range s.Nodes {
		if !n.WasUsed {
			continue
		}
		stored.Nodes = append(stored.Nodes, storedNode{ID: n.ID, X: n.Location.X, Y: n.Location.Y})
	}
	data, err := json.MarshalIndent(&stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
