package sheets

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSheets pre-creates empty sheets in the given order. Useful for seeding
// the cumulative table and config sheets a workbook is expected to carry.
func WithSheets(names ...string) Option {
	return func(m *MemoryStore) {
		for _, name := range names {
			if _, ok := m.sheets[name]; ok {
				continue
			}
			m.sheets[name] = newMemSheet()
			m.order = append(m.order, name)
		}
	}
}
