package hamt

// IsEmpty reports whether m holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }
