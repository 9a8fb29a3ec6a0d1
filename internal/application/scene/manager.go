package scene

import (
	"log"
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager owns the registered scenes and forwards frames to the current one.
// At most one scene is current. All calls happen on the game loop goroutine.
type Manager struct {
	scenes    map[ID]Scene
	current   Scene
	currentID ID
}

// NewManager creates an empty scene manager
func NewManager() *Manager {
	return &Manager{scenes: make(map[ID]Scene)}
}

// Add registers s under id and initializes it.
// Duplicate ids and nil scenes are rejected.
func (m *Manager) Add(id ID, s Scene) bool {
	if s == nil {
		log.Printf("[SceneManager] refusing nil scene for %s", id)
		return false
	}
	if _, exists := m.scenes[id]; exists {
		log.Printf("[SceneManager] scene %s already registered", id)
		return false
	}

	m.scenes[id] = s
	s.OnInit()
	return true
}

// Switch makes id the current scene. The outgoing scene is stopped before the
// incoming one starts. Unknown ids leave the current scene in place.
func (m *Manager) Switch(id ID) bool {
	next, ok := m.scenes[id]
	if !ok {
		log.Printf("[SceneManager] cannot switch to unregistered scene %s", id)
		return false
	}

	if m.current != nil {
		m.current.OnStop()
	}
	m.current = next
	m.currentID = id
	m.current.OnStart()
	return true
}

// Remove stops (if current) and destroys the scene registered under id
func (m *Manager) Remove(id ID) bool {
	s, ok := m.scenes[id]
	if !ok {
		log.Printf("[SceneManager] cannot remove unregistered scene %s", id)
		return false
	}

	if m.current != nil && m.currentID == id {
		s.OnStop()
		m.current = nil
	}
	s.OnDestroy()
	delete(m.scenes, id)
	return true
}

// Destroy destroys every registered scene and empties the registry
func (m *Manager) Destroy() {
	if m.current != nil {
		m.current.OnStop()
		m.current = nil
	}
	for _, id := range m.IDs() {
		m.scenes[id].OnDestroy()
	}
	clear(m.scenes)
}

// Update forwards to the current scene
func (m *Manager) Update(dt float64) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Draw forwards to the current scene
func (m *Manager) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}

// HandleInput forwards to the current scene
func (m *Manager) HandleInput(dt float64) {
	if m.current != nil {
		m.current.HandleInput(dt)
	}
}

// Current returns the id of the current scene, if any
func (m *Manager) Current() (ID, bool) {
	if m.current == nil {
		return 0, false
	}
	return m.currentID, true
}

// Len returns the number of registered scenes
func (m *Manager) Len() int {
	return len(m.scenes)
}

// IDs returns the registered ids in ascending order
func (m *Manager) IDs() []ID {
	return slices.Sorted(maps.Keys(m.scenes))
}

// LogScenes prints the registered scene ids
func (m *Manager) LogScenes() {
	ids := m.IDs()
	log.Printf("[SceneManager] %d scenes registered", len(ids))
	for _, id := range ids {
		marker := ""
		if cur, ok := m.Current(); ok && cur == id {
			marker = " (current)"
		}
		log.Printf("[SceneManager]   %s%s", id, marker)
	}
}
