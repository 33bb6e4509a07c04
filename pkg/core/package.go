// pkg/core/package.go
package core

// ProbeKind classifies what a probe looked at
type ProbeKind string

const (
	ProbeCompiler ProbeKind = "compiler"
	ProbeLibrary  ProbeKind = "library"
	ProbeDevTools ProbeKind = "devtools"
)

// ProbeResult is the outcome of checking one fact about the host
type ProbeResult struct {
	Subject string    `yaml:"subject"`          // Library or tool name
	Kind    ProbeKind `yaml:"kind"`             // What was probed
	Found   bool      `yaml:"found"`            // Whether the requirement was met
	Detail  string    `yaml:"detail,omitempty"` // Raw tool output if any
}
