package notebook

// Member is a single name/value pair of an Object.
type Member struct {
	Name  string
	Value *Value
}

// Object is a JSON object that remembers member insertion order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an object holding the given members in order.
// A repeated name replaces the earlier value but keeps its position.
func NewObject(members ...Member) *Object {
	o := &Object{index: make(map[string]int, len(members))}
	for _, m := range members {
		o.Set(m.Name, m.Value)
	}
	return o
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under name.
func (o *Object) Get(name string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether name is present.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Set stores v under name. Existing members keep their position.
func (o *Object) Set(name string, v *Value) {
	if v == nil {
		v = Null()
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[name]; ok {
		o.members[i].Value = v
		return
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{Name: name, Value: v})
}

// Delete removes name and reports whether it was present.
func (o *Object) Delete(name string) bool {
	if o == nil {
		return false
	}
	i, ok := o.index[name]
	if !ok {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, name)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].Name] = j
	}
	return true
}

// Keys returns member names in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	if o == nil {
		return keys
	}
	for _, m := range o.members {
		keys = append(keys, m.Name)
	}
	return keys
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(name string, v *Value) bool) {
	if o == nil {
		return
	}
	for _, m := range o.members {
		if !fn(m.Name, m.Value) {
			return
		}
	}
}

// Array is an ordered JSON array.
type Array struct {
	elems []*Value
}

// NewArray creates an array holding vals in order.
func NewArray(vals ...*Value) *Array {
	a := &Array{elems: make([]*Value, 0, len(vals))}
	for _, v := range vals {
		a.Append(v)
	}
	return a
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the element at index i, if it exists.
func (a *Array) At(i int) (*Value, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.elems[i], true
}

// Append adds v to the end of the array.
func (a *Array) Append(v *Value) {
	if v == nil {
		v = Null()
	}
	a.elems = append(a.elems, v)
}

// Values returns a copy of the element slice.
func (a *Array) Values() []*Value {
	out := make([]*Value, a.Len())
	if a != nil {
		copy(out, a.elems)
	}
	return out
}

// Filter returns a new array holding the elements for which keep returns
// true, in their original order. a is not modified.
func (a *Array) Filter(keep func(i int, v *Value) bool) *Array {
	out := &Array{elems: make([]*Value, 0, a.Len())}
	for i, v := range a.Values() {
		if keep(i, v) {
			out.elems = append(out.elems, v)
		}
	}
	return out
}
