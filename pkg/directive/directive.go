// Package directive models the instructions prebuild hands to the host build
// tool and their line-oriented encoding.
//
// Components never write to stdout directly. They append to a Log and the
// caller serializes the whole log once with an Encoder.
package directive

import "fmt"

// Kind identifies a directive type
type Kind int

const (
	Warning Kind = iota
	LinkerArg
	FeatureFlag
	RerunTrigger
)

// String returns the protocol key for the kind
func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case LinkerArg:
		return "rustc-link-arg"
	case FeatureFlag:
		return "rustc-cfg"
	case RerunTrigger:
		return "rerun-if-changed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Directive is a single build instruction
type Directive struct {
	Kind  Kind
	Value string // Message, linker argument, feature name or path
}

// String renders the directive without namespace, for logs and reports
func (d Directive) String() string {
	return d.Kind.String() + "=" + d.payload()
}

func (d Directive) payload() string {
	if d.Kind == FeatureFlag {
		return `feature="` + d.Value + `"`
	}
	return d.Value
}

// FrameworkFlag is the linker token that precedes a framework name
const FrameworkFlag = "-framework"

// Frameworks returns one adjacent (-framework, name) LinkerArg pair per name,
// in order
func Frameworks(names ...string) []Directive {
	out := make([]Directive, 0, 2*len(names))
	for _, name := range names {
		out = append(out,
			Directive{Kind: LinkerArg, Value: FrameworkFlag},
			Directive{Kind: LinkerArg, Value: name},
		)
	}
	return out
}

// FrameworkPairs extracts the framework names bound in ds, in order.
// A "-framework" token not followed by another LinkerArg is ignored.
func FrameworkPairs(ds []Directive) []string {
	var names []string
	for i := 0; i+1 < len(ds); i++ {
		if ds[i].Kind == LinkerArg && ds[i].Value == FrameworkFlag && ds[i+1].Kind == LinkerArg {
			names = append(names, ds[i+1].Value)
			i++
		}
	}
	return names
}
