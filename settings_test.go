package arbor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := &FileStore{Path: path}

	saved := &Settings{
		Nodes: []NodeSettings{
			{ID: 1, Location: Vec2{100, 200}, WasUsed: true},
			{ID: 3, Location: Vec2{-50, 0.5}, WasUsed: true},
		},
		ViewScroll: Vec2{-310, 220},
		ViewZoom:   1.5,
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ViewScroll != saved.ViewScroll || loaded.ViewZoom != saved.ViewZoom {
		t.Errorf("view = %v/%v, want %v/%v", loaded.ViewScroll, loaded.ViewZoom, saved.ViewScroll, saved.ViewZoom)
	}
	if len(loaded.Nodes) != 2 {
		t.Fatalf("loaded %d node entries, want 2", len(loaded.Nodes))
	}
	if loaded.Nodes[0].ID != 1 || loaded.Nodes[0].Location != (Vec2{100, 200}) {
		t.Errorf("node entry 0 = %+v", loaded.Nodes[0])
	}
	if loaded.Dirty {
		t.Error("freshly loaded settings are dirty")
	}
}

func TestFileStorePrunesUnusedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := &FileStore{Path: path}

	if err := store.Save(&Settings{
		Nodes: []NodeSettings{
			{ID: 1, WasUsed: true},
			{ID: 2, WasUsed: false}, // never declared since load
		},
		ViewZoom: 1,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Nodes) != 1 || loaded.Nodes[0].ID != 1 {
		t.Errorf("pruning failed, loaded %+v", loaded.Nodes)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "absent.json")}
	s, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must load as empty settings, got %v", err)
	}
	if len(s.Nodes) != 0 || s.ViewZoom != 1 {
		t.Errorf("empty settings = %+v, want zero nodes and zoom 1", s)
	}
}

func TestFileStoreBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&FileStore{Path: path}).Load(); err == nil {
		t.Error("corrupt file loaded without error")
	}
}

func TestFileStoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "settings.json")
	if err := (&FileStore{Path: path}).Save(&Settings{ViewZoom: 1}); err != nil {
		t.Fatalf("Save into a missing directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestFileStoreSanitizesZoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[],"view":{"scrollX":0,"scrollY":0,"zoom":0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := (&FileStore{Path: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ViewZoom != 1 {
		t.Errorf("zoom = %v, want 1 (zero is not a usable zoom)", s.ViewZoom)
	}
}

func TestSettingsAddNodeMarksDirty(t *testing.T) {
	var s Settings
	ns := s.addNode(7)
	if !s.Dirty {
		t.Error("creating an entry left settings clean")
	}
	if ns.ID != 7 {
		t.Errorf("entry id = %d, want 7", ns.ID)
	}

	s.Dirty = false
	if again := s.addNode(7); again != ns && again.ID != 7 {
		t.Error("addNode created a duplicate entry")
	}
	if s.Dirty {
		t.Error("re-fetching an entry marked settings dirty")
	}
}

func TestContextLoadsPersistedView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := &FileStore{Path: path}
	if err := store.Save(&Settings{
		Nodes:      []NodeSettings{{ID: 1, Location: Vec2{77, 88}, WasUsed: true}},
		ViewScroll: Vec2{-40, -30},
		ViewZoom:   2,
	}); err != nil {
		t.Fatal(err)
	}

	in := &manualInput{}
	c, err := NewContext(&Config{Input: in, Store: store})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	step(c, in, InputState{}, func() {
		c.BeginNode(1)
		c.EndNode()
	})

	if got := c.Canvas().Zoom.X; got != 2 {
		t.Errorf("restored zoom = %v, want 2", got)
	}
	if got := c.Canvas().ClientOrigin; got != (Vec2{40, 30}) {
		t.Errorf("restored origin = %v, want (40, 30)", got)
	}
	n := c.FindNode(1)
	if n.Bounds.X != 77 || n.Bounds.Y != 88 {
		t.Errorf("node restored at (%v, %v), want (77, 88)", n.Bounds.X, n.Bounds.Y)
	}
}
