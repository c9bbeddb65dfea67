// Package registry exposes the top-level namespace of a protobuf file the
// way a generated module does: one binding per enum, per enum value and
// per message, looked up by name.
package registry

import (
	"slices"

	"github.com/samber/lo"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Kind identifies what a name is bound to.
type Kind int

const (
	KindConstant Kind = iota + 1
	KindEnum
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindEnum:
		return "enum"
	case KindMessage:
		return "message"
	}
	return "unknown"
}

// Value is anything a name can be bound to.
type Value interface {
	Kind() Kind
}

// KeyValuer is implemented by values that enumerate key/value pairs.
type KeyValuer interface {
	Keys() []string
	Values() []int32
}

// Constant is a named integer, such as a single enum value.
type Constant struct {
	Number int32
	// Enum is the full name of the enum declaring the value, if any.
	Enum protoreflect.FullName
}

func (Constant) Kind() Kind { return KindConstant }

// Enum is a named set of members.
type Enum struct {
	FullName protoreflect.FullName
	keys     []string
	values   []int32
}

// NewEnum returns an Enum with the given member names and numbers.
// The slices are used as given, even when their lengths differ.
func NewEnum(name protoreflect.FullName, keys []string, values []int32) *Enum {
	return &Enum{FullName: name, keys: keys, values: values}
}

// EnumOf converts an enum descriptor, members in declaration order.
func EnumOf(ed protoreflect.EnumDescriptor) *Enum {
	vals := ed.Values()
	e := &Enum{
		FullName: ed.FullName(),
		keys:     make([]string, 0, vals.Len()),
		values:   make([]int32, 0, vals.Len()),
	}
	for i := range vals.Len() {
		v := vals.Get(i)
		e.keys = append(e.keys, string(v.Name()))
		e.values = append(e.values, int32(v.Number()))
	}
	return e
}

func (*Enum) Kind() Kind { return KindEnum }

func (e *Enum) Keys() []string { return slices.Clone(e.keys) }

func (e *Enum) Values() []int32 { return slices.Clone(e.values) }

// Message marks a message type. It has no members of its own.
type Message struct {
	FullName protoreflect.FullName
}

func (Message) Kind() Kind { return KindMessage }

// Binding pairs a name with its value.
type Binding struct {
	Name  string
	Value Value
}

// Registry is a flat namespace of bindings.
type Registry struct {
	bindings map[string]Value
}

// New returns a Registry holding bindings. Later bindings replace earlier
// ones with the same name.
func New(bindings ...Binding) *Registry {
	r := &Registry{bindings: make(map[string]Value, len(bindings))}
	for _, b := range bindings {
		r.Bind(b.Name, b.Value)
	}
	return r
}

// FromFile returns the namespace of a single file.
func FromFile(fd protoreflect.FileDescriptor) *Registry {
	return FromFiles(fd)
}

// FromFiles merges the namespaces of files, in order.
func FromFiles(files ...protoreflect.FileDescriptor) *Registry {
	r := New()
	for _, fd := range files {
		r.AddFile(fd)
	}
	return r
}

// AddFile binds the top-level enums, their values and the top-level
// messages of fd. Nested declarations are not bound.
func (r *Registry) AddFile(fd protoreflect.FileDescriptor) {
	enums := fd.Enums()
	for i := range enums.Len() {
		ed := enums.Get(i)
		r.Bind(string(ed.Name()), EnumOf(ed))
		vals := ed.Values()
		for j := range vals.Len() {
			v := vals.Get(j)
			r.Bind(string(v.Name()), Constant{Number: int32(v.Number()), Enum: ed.FullName()})
		}
	}
	msgs := fd.Messages()
	for i := range msgs.Len() {
		md := msgs.Get(i)
		r.Bind(string(md.Name()), Message{FullName: md.FullName()})
	}
}

// Bind binds name to v, replacing any previous binding.
func (r *Registry) Bind(name string, v Value) {
	r.bindings[name] = v
}

// Lookup returns the value bound to name.
func (r *Registry) Lookup(name string) (Value, bool) {
	v, ok := r.bindings[name]
	return v, ok
}

// Names returns every bound name in ascending order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.bindings)
	slices.Sort(names)
	return names
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}
