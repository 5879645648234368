// Package progress owns everything the game persists between sessions:
// level unlock state, the selected difficulty and audio/input options.
// Stored values are never trusted; they are normalized on every load.
package progress

import (
	"sort"
	"strings"
	"sync"
)

// Keys used in the key-value store.
const (
	KeyDifficulty    = "selectedDifficulty"
	KeyLevels        = "levels"
	KeyMusicVolume   = "musicVolume"
	KeySFXVolume     = "sfxVolume"
	KeyAmbientVolume = "ambientVolume"
	KeyJoystick      = "joystick"
)

// KV is a string key-value store. Get reports ok=false for absent keys.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-memory KV used when no database is available and in tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements KV.
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MemoryKV) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// prefixed scopes every key of an underlying store under a namespace.
type prefixed struct {
	kv     KV
	prefix string
}

// Prefixed returns a KV that stores keys as "<namespace>/<key>" in kv.
// Used to keep SSH users' progress apart in one database.
func Prefixed(kv KV, namespace string) KV {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return kv
	}
	return prefixed{kv: kv, prefix: namespace + "/"}
}

func (p prefixed) Get(key string) (string, bool, error) { return p.kv.Get(p.prefix + key) }
func (p prefixed) Set(key, value string) error { return p.kv.Set(p.prefix+key, value) }
func (p prefixed) Delete(key string) error { return p.kv.Delete(p.prefix + key) }
