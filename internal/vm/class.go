package vm

import (
	"sort"

	"xbase/internal/diag"
	"xbase/internal/program"
)

// Instance is a constructed widget object.
type Instance struct {
	Class string
	Base  program.Widget
	Props map[string]Value
}

// PropNames returns the property names in sorted order.
func (in *Instance) PropNames() []string {
	names := make([]string, 0, len(in.Props))
	for n := range in.Props {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Instantiate runs the constructor of a declared class: base defaults first,
// then each THIS.<prop> assignment in declaration order.
// Script variables visible at the call are readable from the constructor.
//
// Scripts only declare classes; there is no statement that constructs one.
// Instantiate is the embedding API: a host runs the unit, then builds the
// widgets it wants to show.
func (m *Machine) Instantiate(name string) (inst *Instance, err error) {
	c, ok := m.classes[key(name)]
	if !ok {
		for i := range m.unit.Classes {
			if key(m.unit.Classes[i].Name) == key(name) {
				c, ok = &m.unit.Classes[i], true
				break
			}
		}
	}
	if !ok {
		return nil, &Error{Code: diag.ExeUndefinedVar, Message: "class " + name + " is not declared"}
	}
	if m.vars == nil {
		m.vars = make(map[string]Value)
	}

	defer func() {
		if r := recover(); r != nil {
			f, isFault := r.(fault)
			if !isFault {
				panic(r)
			}
			inst, err = nil, f.err
		}
	}()

	inst = &Instance{Class: c.Name, Base: c.Base, Props: make(map[string]Value)}
	for _, p := range c.Base.Defaults() {
		inst.Props[p.Name] = m.eval(p.Value)
	}
	for _, p := range c.Props {
		m.line = p.Line
		inst.Props[p.Name] = m.eval(p.Value)
	}
	return inst, nil
}
