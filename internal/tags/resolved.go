package tags

// Resolved holds the canonical fields selected for a file, in the order
// they were resolved. Order is part of the behaviour: adapters apply
// fields in resolution order and dry-run output lists them the same
// way.
type Resolved struct {
	order  []Field
	values map[Field]string
}

func NewResolved() *Resolved {
	return &Resolved{values: make(map[Field]string)}
}

// Set records a value for a field. Setting a field again overwrites the
// value but keeps its original position.
func (r *Resolved) Set(f Field, value string) {
	if _, ok := r.values[f]; !ok {
		r.order = append(r.order, f)
	}
	r.values[f] = value
}

func (r *Resolved) Get(f Field) (string, bool) {
	v, ok := r.values[f]
	return v, ok
}

func (r *Resolved) Has(f Field) bool {
	_, ok := r.values[f]
	return ok
}

// Fields returns the resolved fields in insertion order.
func (r *Resolved) Fields() []Field {
	return append([]Field(nil), r.order...)
}

func (r *Resolved) Len() int {
	return len(r.order)
}
