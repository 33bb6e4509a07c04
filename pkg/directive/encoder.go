package directive

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Encoder writes directives in the "<namespace>:<key>=<value>" line protocol
type Encoder struct {
	namespace string
	w         *bufio.Writer
}

// NewEncoder creates an encoder writing to w
func NewEncoder(w io.Writer, namespace string) *Encoder {
	return &Encoder{namespace: namespace, w: bufio.NewWriter(w)}
}

// Encode writes ds one per line and flushes
func (e *Encoder) Encode(ds ...Directive) error {
	for _, d := range ds {
		if _, err := e.w.WriteString(e.Line(d)); err != nil {
			return fmt.Errorf("writing directive: %w", err)
		}
		if err := e.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing directive: %w", err)
		}
	}
	return e.w.Flush()
}

// Line renders one directive without the trailing newline.
// Line breaks in the payload are flattened so the directive stays on one line.
func (e *Encoder) Line(d Directive) string {
	payload := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(d.payload())
	return e.namespace + ":" + d.Kind.String() + "=" + payload
}
