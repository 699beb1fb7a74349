package weft

import (
	"fmt"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/kittyverse/weft/codec"
	"github.com/kittyverse/weft/errors"
)

// Event is a record of a successful state transition. Handlers return
// events in DeliverResult and the application publishes them once the block
// is committed. The binary layout is described in codec.proto.
type Event struct {
	// Kind names the transition, for example "kitty_adopted".
	Kind       string       `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind"`
	Attributes []*Attribute `protobuf:"bytes,2,rep,name=attributes,proto3" json:"attributes,omitempty"`
}

// Attribute is a single key value pair of an event.
type Attribute struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value"`
}

// NewEvent builds an event of the given kind. Attributes are given as key
// value pairs and formatted with %v, which uses the String method of ids and
// addresses.
func NewEvent(kind string, keyvals ...interface{}) *Event {
	if len(keyvals)%2 != 0 {
		panic("odd number of event attributes")
	}
	e := &Event{Kind: kind}
	for i := 0; i < len(keyvals); i += 2 {
		e.Attributes = append(e.Attributes, &Attribute{
			Key:   fmt.Sprint(keyvals[i]),
			Value: fmt.Sprint(keyvals[i+1]),
		})
	}
	return e
}

// Attr returns the value of the attribute, or an empty string.
func (m *Event) Attr(key string) string {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func (m *Event) String() string {
	parts := make([]string, 0, len(m.Attributes)+1)
	parts = append(parts, m.Kind)
	for _, a := range m.Attributes {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return strings.Join(parts, " ")
}

func (m *Event) Validate() error {
	if m.Kind == "" {
		return errors.Field("Kind", errors.ErrEmpty, "required")
	}
	return nil
}

type eventView Event

func (m *eventView) Reset()         { *m = eventView{} }
func (m *eventView) String() string { return proto.CompactTextString(m) }
func (*eventView) ProtoMessage()    {}

func (m *Event) Marshal() ([]byte, error) {
	return codec.Marshal((*eventView)(m))
}

func (m *Event) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*eventView)(m))
}

type attributeView Attribute

func (m *attributeView) Reset()         { *m = attributeView{} }
func (m *attributeView) String() string { return proto.CompactTextString(m) }
func (*attributeView) ProtoMessage()    {}

func (a *Attribute) Marshal() ([]byte, error) {
	return codec.Marshal((*attributeView)(a))
}

func (a *Attribute) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*attributeView)(a))
}
