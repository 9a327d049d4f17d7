package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType is the standardized key for machine-readable event names.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized key for the next step a user should take.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldPath is the standardized key for snapshot and config file paths.
	FieldPath = "path"
	// FieldRecordCount is the standardized key for the number of records involved.
	FieldRecordCount = "record_count"
	// FieldRecordID is the standardized key for a CD record identifier.
	FieldRecordID = "record_id"
	// FieldSessionID is the standardized key for the per-run session identifier.
	FieldSessionID = "session_id"
)
