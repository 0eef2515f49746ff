package keychain

import "sync"

// Memory is an in-process Store used by tests and available as a fallback
// backend. Secrets live only as long as the process.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(service, account string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	secret, ok := m.entries[service+"\x00"+account]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (m *Memory) Set(service, account, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[service+"\x00"+account] = secret
	return nil
}

func (m *Memory) Delete(service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := service + "\x00" + account
	if _, ok := m.entries[key]; !ok {
		return ErrNotFound
	}
	delete(m.entries, key)
	return nil
}
