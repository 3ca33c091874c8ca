package store

import (
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process KV used by tests and dry runs. Setting FailWrites
// makes every Put and Delete return that error without touching the data;
// FailReads does the same for Get.
type Memory struct {
	mu         sync.Mutex
	values     map[string]string
	FailWrites error
	FailReads  error
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return "", false, fmt.Errorf("get %q: %w", key, m.FailReads)
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return fmt.Errorf("put %q: %w", key, m.FailWrites)
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return fmt.Errorf("delete %q: %w", key, m.FailWrites)
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.values))
	for k := range m.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}
