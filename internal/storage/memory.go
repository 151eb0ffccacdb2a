package storage

// Memory is an in-process blob store. Values are copied on the way in and out.
type Memory struct {
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.blobs[key] = append([]byte(nil), value...)
	return nil
}
