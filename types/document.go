package types

import "github.com/benbjohnson/immutable"

// Line is one line of a document. Assignments have a Key; blank and comment
// lines keep their whole text in Raw.
//
// For an assignment, Lead is the text before the value (key, spacing and
// the equals sign), Raw is the value exactly as read, and Trail is whatever
// follows it. An empty Raw means the value is printed canonically.
type Line struct {
	Key   string
	Value Value
	Lead  string
	Raw   string
	Trail string
}

// IsAssignment reports whether the line binds a key
func (line Line) IsAssignment() bool {
	return line.Key != ""
}

// Document is an immutable sequence of lines indexed by key
type Document struct {
	lines *immutable.List
	index *immutable.Map
}

// NewDocument builds a document. A later assignment to the same key wins.
func NewDocument(lines ...Line) Document {
	imm := immutable.NewList()
	index := immutable.NewMap(nil)
	if len(lines) > 0 {
		lb := immutable.NewListBuilder(imm)
		mb := immutable.NewMapBuilder(index)
		for i, line := range lines {
			lb.Append(line)
			if line.IsAssignment() {
				mb.Set(line.Key, i)
			}
		}
		imm = lb.List()
		index = mb.Map()
	}
	return Document{lines: imm, index: index}
}

func (doc Document) list() *immutable.List {
	if doc.lines == nil {
		return immutable.NewList()
	}
	return doc.lines
}

func (doc Document) lookup(key string) (int, bool) {
	if doc.index == nil {
		return 0, false
	}
	i, found := doc.index.Get(key)
	if !found {
		return 0, false
	}
	return i.(int), true
}

// Len counts lines
func (doc Document) Len() int {
	return doc.list().Len()
}

// Line returns the i-th line
func (doc Document) Line(i int) Line {
	return doc.list().Get(i).(Line)
}

// Keys returns assigned keys in document order
func (doc Document) Keys() []string {
	var keys []string
	itr := doc.list().Iterator()
	for !itr.Done() {
		i, v := itr.Next()
		line := v.(Line)
		if !line.IsAssignment() {
			continue
		}
		if at, _ := doc.lookup(line.Key); at == i {
			keys = append(keys, line.Key)
		}
	}
	return keys
}

// Get returns the value bound to key
func (doc Document) Get(key string) (Value, bool) {
	i, found := doc.lookup(key)
	if !found {
		return nil, false
	}
	return doc.Line(i).Value, true
}

// Lookup is Get with an Undefined error for missing keys
func (doc Document) Lookup(key string) (Value, error) {
	value, found := doc.Get(key)
	if !found {
		return nil, Undefined{Name: key}
	}
	return value, nil
}

// Set binds key to value. An existing line keeps its layout but drops its
// raw text unless the value is unchanged; a new key is appended.
func (doc Document) Set(key string, value Value) Document {
	i, found := doc.lookup(key)
	if !found {
		line := Line{Key: key, Value: value, Lead: key + " = ", Trail: "\n"}
		lines := doc.list().Append(line)
		index := doc.index
		if index == nil {
			index = immutable.NewMap(nil)
		}
		return Document{lines: lines, index: index.Set(key, lines.Len()-1)}
	}
	line := doc.Line(i)
	if Equals(line.Value, value) {
		return doc
	}
	line.Value = value
	line.Raw = ""
	return Document{lines: doc.list().Set(i, line), index: doc.index}
}

// Delete removes every line assigning key
func (doc Document) Delete(key string) Document {
	if _, found := doc.lookup(key); !found {
		return doc
	}
	var lines []Line
	itr := doc.list().Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		line := v.(Line)
		if line.Key != key {
			lines = append(lines, line)
		}
	}
	return NewDocument(lines...)
}
