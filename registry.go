package recjson

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	regMu     sync.RWMutex
	regByName = make(map[string]RecordType)
	regByType = make(map[reflect.Type]RecordType)
)

// register adds a record type to the process-wide registry. Duplicate names
// are rejected; the Go-type index keeps the last definition for a given T so
// redefinitions in tests stay harmless.
func register(rt RecordType, goType reflect.Type) error {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := regByName[rt.Name()]; exists {
		return fmt.Errorf("recjson: record type %q already registered", rt.Name())
	}
	regByName[rt.Name()] = rt
	if goType != nil {
		regByType[goType] = rt
	}
	return nil
}

// Lookup returns the record type registered under name, or nil.
func Lookup(name string) RecordType {
	regMu.RLock()
	defer regMu.RUnlock()
	return regByName[name]
}

// All returns a snapshot of every registered record type keyed by name.
func All() map[string]RecordType {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make(map[string]RecordType, len(regByName))
	for k, v := range regByName {
		out[k] = v
	}
	return out
}

// lookupGoType resolves a record type by the Go type of its instances. Used
// by the classifier to render nested record values without a Marshaler hook.
func lookupGoType(t reflect.Type) RecordType {
	regMu.RLock()
	defer regMu.RUnlock()
	if rt, ok := regByType[t]; ok {
		return rt
	}
	if t.Kind() == reflect.Pointer {
		return regByType[t.Elem()]
	}
	return nil
}
