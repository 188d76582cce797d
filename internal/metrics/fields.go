package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrWorkflow = "workflow"
	AttrSnapshot = "snapshot"
	AttrOutcome  = "outcome"
)
