package audit

// Category classifies an emitted record.
type Category string

const (
	// CategoryModel marks per-model-asset records from the model scan.
	CategoryModel Category = "model"
	// CategoryScene marks per-scene summary records.
	CategoryScene Category = "scene"
)

// Descriptor ids for the findings this pass emits.
const (
	DescriptorModelUsage = "usage.model"
	DescriptorSceneUsage = "usage.scene"
)

// Location points a record at its origin in the project.
type Location struct {
	// Path is the asset or scene path.
	Path string `json:"path"`
	// Line is optional; zero means not applicable.
	Line int `json:"line,omitempty"`
}

// Record is one immutable finding. Properties is an ordered list whose
// meaning is defined by the record's category: model records carry
// index-format, index count, vertex count, submesh count and readability;
// scene records carry object, prefab, material, shader and texture
// counts. Ownership transfers to the sink on emission.
type Record struct {
	Descriptor string   `json:"descriptor"`
	Subject    string   `json:"subject"`
	Category   Category `json:"category"`
	Location   Location `json:"location"`
	Properties []any    `json:"properties"`
}

// Sink receives emitted records. Implementations are provided by the
// reporting collaborator; Emit is called synchronously, once per record.
type Sink interface {
	Emit(record Record)
}

// MemorySink collects records in emission order. Used by the CLI to
// gather a run's findings and by tests to assert ordering.
type MemorySink struct {
	Records []Record
}

// Emit appends the record.
func (s *MemorySink) Emit(record Record) {
	s.Records = append(s.Records, record)
}
