package ports

// SettingsStore is a small persisted key-value record. Put replaces the
// listed keys in one write, so a multi-field update is visible to readers
// all-or-nothing. Implementations must be safe for concurrent use.
type SettingsStore interface {
	Get(key string) (value string, ok bool, err error)
	Put(values map[string]string) error
	Clear() error
}
