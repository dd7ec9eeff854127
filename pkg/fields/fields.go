package fields

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goliatone/go-formfields/pkg/dom"
)

// Serialize keys tell a submission layer which channel a field's value
// travels through: plain values under "data", file attachments under
// "files". The key is metadata for that collaborator; Serialize itself
// ignores it.
const (
	SerializeKeyData  = "data"
	SerializeKeyFiles = "files"
)

// Field is the contract every form control implements.
type Field interface {
	// Name returns the control's name attribute, empty when the source
	// markup carried none.
	Name() string

	// Value returns the current value: a string for scalar controls, an
	// ordered []string for multi-selection controls, or an io.Reader for
	// file controls. Empty-like values read as "".
	Value() any

	// SetValue replaces the current value. Option-based controls resolve
	// the candidate against their options and labels; file controls
	// coerce paths into open readers.
	SetValue(v any) error

	// SerializeKey reports which submission channel the value belongs to.
	SerializeKey() string

	// Serialize returns the single-entry name-to-value mapping consumed
	// by a submission layer.
	Serialize() map[string]any
}

var (
	_ Field = (*TextInput)(nil)
	_ Field = (*Textarea)(nil)
	_ Field = (*FileInput)(nil)
)

// isEmpty reports whether a stored value reads as empty. Nil, empty
// strings, zero numbers, false and empty collections all collapse to the
// empty-string sentinel on read.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

func attrName(node dom.Node) string {
	name, _ := node.Attr("name")
	return name
}

// TextInput is a scalar text control. Its initial value comes from the
// source node's value attribute.
type TextInput struct {
	name  string
	value any
}

// NewTextInput builds a TextInput from a parsed input node. A missing
// value attribute leaves the value unset.
func NewTextInput(node dom.Node) *TextInput {
	f := &TextInput{name: attrName(node)}
	if value, ok := node.Attr("value"); ok {
		f.value = value
	}
	return f
}

func (f *TextInput) Name() string { return f.name }

func (f *TextInput) Value() any {
	if isEmpty(f.value) {
		return ""
	}
	return f.value
}

// SetValue stores v verbatim.
func (f *TextInput) SetValue(v any) error {
	f.value = v
	return nil
}

func (f *TextInput) SerializeKey() string { return SerializeKeyData }

func (f *TextInput) Serialize() map[string]any {
	return map[string]any{f.name: f.Value()}
}

// Textarea is a scalar text control whose initial value is the source
// node's text content rather than a value attribute.
type Textarea struct {
	TextInput
}

// NewTextarea builds a Textarea from a parsed textarea node. Trailing
// carriage returns are stripped from the text first, then trailing line
// feeds are stripped from that result. The passes run in that order, so a
// mixed trailing sequence such as "\r\n" loses only the line feed.
func NewTextarea(node dom.Node) *Textarea {
	f := &Textarea{}
	f.name = attrName(node)
	text := strings.TrimRight(node.Text(), "\r")
	f.value = strings.TrimRight(text, "\n")
	return f
}

// FileInput is a scalar control whose value is an open readable stream.
// The field never closes the stream; releasing it stays with the caller
// or a downstream consumer.
type FileInput struct {
	name  string
	value any
}

// NewFileInput builds a FileInput from a parsed input node. File controls
// carry no initial value.
func NewFileInput(node dom.Node) *FileInput {
	return &FileInput{name: attrName(node)}
}

func (f *FileInput) Name() string { return f.name }

func (f *FileInput) Value() any {
	if isEmpty(f.value) {
		return ""
	}
	return f.value
}

// SetValue stores an io.Reader as-is. A string is treated as a filesystem
// path and opened eagerly, surfacing any open failure to the caller.
// Anything else fails with ErrUnsupportedValue.
func (f *FileInput) SetValue(v any) error {
	switch value := v.(type) {
	case io.Reader:
		f.value = value
	case string:
		handle, err := os.Open(value)
		if err != nil {
			return fmt.Errorf("fields: open %q: %w", value, err)
		}
		f.value = handle
	default:
		return fmt.Errorf("%w: got %T", ErrUnsupportedValue, v)
	}
	return nil
}

// SerializeKey routes file values to the attachment channel.
func (f *FileInput) SerializeKey() string { return SerializeKeyFiles }

func (f *FileInput) Serialize() map[string]any {
	return map[string]any{f.name: f.Value()}
}
