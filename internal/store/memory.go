package store

import (
	"context"
	"encoding/json"
)

// Memory is an in-process Store with the same best-effort contract as the
// sqlite store. It backs ephemeral sessions and component tests.
type Memory struct {
	docs map[Collection][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: map[Collection][]byte{}}
}

func (m *Memory) EnsureSchema(context.Context) error { return nil }

func (m *Memory) Read(_ context.Context, c Collection, out any) {
	body, ok := m.docs[c]
	if !ok {
		return
	}
	_ = json.Unmarshal(body, out)
}

func (m *Memory) Write(_ context.Context, c Collection, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.docs[c] = body
}

func (m *Memory) Clear(_ context.Context, c Collection) {
	delete(m.docs, c)
}

func (m *Memory) Close() error { return nil }
