package logging

// Shared field names so log consumers can rely on stable keys.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldPath      = "path"
)
