package merge

import "github.com/flarebyte/scribe/internal/model"

// Commands seeds the static names with empty descriptions and overlays the
// dynamic records, which always win on conflict.
func Commands(static []string, dynamic []model.CommandRecord) []model.CommandRecord {
	m := NewOrderedMap[model.CommandRecord]()
	for _, name := range static {
		if name == "" {
			continue
		}
		m.Set(name, model.CommandRecord{Name: name})
	}
	for _, rec := range dynamic {
		if rec.Name == "" {
			continue
		}
		m.Set(rec.Name, rec)
	}
	return m.Sorted()
}

// Flags applies the same precedence as Commands to flag records.
func Flags(static []string, dynamic []model.FlagRecord) []model.FlagRecord {
	m := NewOrderedMap[model.FlagRecord]()
	for _, name := range static {
		if name == "" {
			continue
		}
		m.Set(name, model.FlagRecord{Name: name})
	}
	for _, rec := range dynamic {
		if rec.Name == "" {
			continue
		}
		m.Set(rec.Name, rec)
	}
	return m.Sorted()
}
