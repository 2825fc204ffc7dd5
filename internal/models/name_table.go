package models

import (
	"strings"
	"unicode"
)

// NameTable resolves identity indices of a trace to display strings.
//
// Actor names carry an instance suffix ("PlayerPawn_C_12"); the table derives a class name for each
// of them ("PlayerPawn_C") so rollups can group instances of the same class. Derived class names
// that do not appear in the uploaded table are appended after the uploaded names.
//
// A NameTable is immutable once built and safe for concurrent use.
type NameTable struct {
	names   []string
	classOf []int
	byName  map[string]int
}

// NewNameTable builds a table from the names captured with a trace.
func NewNameTable(names []string) *NameTable {
	table := &NameTable{
		names:  make([]string, len(names), len(names)+len(names)/4),
		byName: make(map[string]int, len(names)),
	}
	copy(table.names, names)
	for i, name := range table.names {
		if _, exists := table.byName[name]; !exists {
			table.byName[name] = i
		}
	}

	uploaded := len(table.names)
	table.classOf = make([]int, uploaded)
	for i := 0; i < uploaded; i++ {
		className := classNameOf(table.names[i])
		if className == table.names[i] {
			table.classOf[i] = i
			continue
		}
		classIndex, exists := table.byName[className]
		if !exists {
			classIndex = len(table.names)
			table.names = append(table.names, className)
			table.classOf = append(table.classOf, classIndex)
			table.byName[className] = classIndex
		}
		table.classOf[i] = classIndex
	}
	return table
}

// Len returns the number of resolvable indices, derived class names included.
func (t *NameTable) Len() int {
	return len(t.names)
}

// Name returns the display string for index, or false when the index is out of range.
func (t *NameTable) Name(index int) (string, bool) {
	if index < 0 || index >= len(t.names) {
		return "", false
	}
	return t.names[index], true
}

// ClassIndex returns the index of the class name for an actor name index.
func (t *NameTable) ClassIndex(actorIndex int) (int, bool) {
	if actorIndex < 0 || actorIndex >= len(t.classOf) {
		return 0, false
	}
	return t.classOf[actorIndex], true
}

// IndexOf returns the first index holding name.
func (t *NameTable) IndexOf(name string) (int, bool) {
	index, ok := t.byName[name]
	return index, ok
}

// classNameOf strips a trailing "_<digits>" instance suffix.
func classNameOf(name string) string {
	sep := strings.LastIndexByte(name, '_')
	if sep <= 0 || sep == len(name)-1 {
		return name
	}
	for _, r := range name[sep+1:] {
		if !unicode.IsDigit(r) {
			return name
		}
	}
	return name[:sep]
}
