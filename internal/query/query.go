package query

import (
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value is either a single value or, once its key was seen more than
// once, the ordered list of every value given for that key.
type Value struct {
	values []string
}

func (v Value) IsMultiple() bool {
	return len(v.values) > 1
}

func (v Value) First() string {
	if len(v.values) == 0 {
		return ""
	}

	return v.values[0]
}

func (v Value) All() []string {
	return slices.Clone(v.values)
}

func (v Value) String() string {
	return strings.Join(v.values, ",")
}

func (v Value) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	writeValue(stream, v)
	if stream.Error != nil {
		return nil, stream.Error
	}

	return slices.Clone(stream.Buffer()), nil
}

// QueryString keeps its keys in first-seen order. Keys and values share
// memory with the string they were parsed from.
type QueryString struct {
	keys   []string
	values map[string]*Value
}

// Parse never fails: entries without '=' map to an empty value and empty
// entries map the empty key to an empty value.
func Parse(fragment string) *QueryString {
	q := &QueryString{
		values: map[string]*Value{},
	}

	for _, entry := range strings.Split(fragment, "&") {
		key, value, _ := strings.Cut(entry, "=")
		q.add(key, value)
	}

	return q
}

func (q *QueryString) add(key, value string) {
	if v, ok := q.values[key]; ok {
		v.values = append(v.values, value)
		return
	}

	q.keys = append(q.keys, key)
	q.values[key] = &Value{values: []string{value}}
}

func (q *QueryString) Get(key string) (Value, bool) {
	v, ok := q.values[key]
	if !ok {
		return Value{}, false
	}

	return *v, true
}

func (q *QueryString) Keys() []string {
	return slices.Clone(q.keys)
}

func (q *QueryString) Len() int {
	return len(q.keys)
}

func (q *QueryString) ForEach(cb func(key string, v Value)) {
	for _, key := range q.keys {
		cb(key, *q.values[key])
	}
}

// Clone returns a copy whose keys and values own their memory.
func (q *QueryString) Clone() *QueryString {
	c := &QueryString{
		keys:   make([]string, 0, len(q.keys)),
		values: make(map[string]*Value, len(q.values)),
	}

	for _, key := range q.keys {
		owned := strings.Clone(key)
		values := make([]string, len(q.values[key].values))
		for i, v := range q.values[key].values {
			values[i] = strings.Clone(v)
		}

		c.keys = append(c.keys, owned)
		c.values[owned] = &Value{values: values}
	}

	return c
}

func (q *QueryString) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range q.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		writeValue(stream, *q.values[key])
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return slices.Clone(stream.Buffer()), nil
}

func writeValue(stream *jsoniter.Stream, v Value) {
	if !v.IsMultiple() {
		stream.WriteString(v.First())
		return
	}

	stream.WriteArrayStart()
	for i, value := range v.values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(value)
	}
	stream.WriteArrayEnd()
}
