package directive

import "slices"

// Log is an append-only, ordered collection of directives
type Log struct {
	entries []Directive
}

// Warn appends a Warning
func (l *Log) Warn(msg string) {
	l.Append(Directive{Kind: Warning, Value: msg})
}

// LinkArg appends one LinkerArg per value
func (l *Log) LinkArg(values ...string) {
	for _, v := range values {
		l.Append(Directive{Kind: LinkerArg, Value: v})
	}
}

// Feature appends a FeatureFlag
func (l *Log) Feature(name string) {
	l.Append(Directive{Kind: FeatureFlag, Value: name})
}

// RerunIfChanged appends a RerunTrigger
func (l *Log) RerunIfChanged(path string) {
	l.Append(Directive{Kind: RerunTrigger, Value: path})
}

// LinkFrameworks appends framework pairs
func (l *Log) LinkFrameworks(names ...string) {
	l.Append(Frameworks(names...)...)
}

// Append adds directives at the end of the log
func (l *Log) Append(ds ...Directive) {
	l.entries = append(l.entries, ds...)
}

// Directives returns a copy of the logged directives
func (l *Log) Directives() []Directive {
	return slices.Clone(l.entries)
}

// Len returns the number of directives
func (l *Log) Len() int {
	return len(l.entries)
}

// Filter returns the directives of the given kind, in order
func Filter(ds []Directive, kind Kind) []Directive {
	var out []Directive
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Values returns the Value of each directive
func Values(ds []Directive) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Value
	}
	return out
}
