package traversal

import "sync"

// syncMap is a thread-safe map backing plan caches and registries
type syncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func (m *syncMap[K, V]) get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *syncMap[K, V]) put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

func newSyncMap[K comparable, V any]() *syncMap[K, V] {
	return &syncMap[K, V]{m: make(map[K]V)}
}
