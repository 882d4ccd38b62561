// pkg/registry/schema.go
package registry

// Implementation states an activity can be published with.
const (
	StatusCompleted = "completed"
	StatusPlanned   = "planned"
)

// ActivityRegistry is the catalogue of job workers a modeler can drop into a
// BPMN service task.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Cache                *CachePolicy           `json:"cache,omitempty"`
	Workflows            []string               `json:"workflows"`
	Tags                 []string               `json:"tags"`
}

// CachePolicy documents the Redis entry a worker reads or writes.
type CachePolicy struct {
	KeyPattern string `json:"keyPattern"`
	TTL        string `json:"ttl"`
}
