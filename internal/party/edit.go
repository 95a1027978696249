package party

// Edit is an in-progress edit of a contact. Every setter records the new
// value and then runs the matching reaction against the current values,
// merging the reaction's patch into the edit.
type Edit struct {
	base    Contact
	changes Patch
}

// NewEdit starts an edit session over c.
func NewEdit(c Contact) *Edit {
	return &Edit{base: c}
}

// Values returns the current in-progress values.
func (e *Edit) Values() Patch {
	return e.base.Values().Merge(e.changes)
}

// Patch returns the edits accumulated so far, ready for Service.Write.
func (e *Edit) Patch() Patch {
	return e.changes
}

// Contact returns the contact as it would look with the edits applied.
func (e *Edit) Contact() Contact {
	return e.base.Apply(e.changes)
}

func (e *Edit) set(p Patch, react func(Patch) Patch) {
	e.changes = e.changes.Merge(p)
	if react != nil {
		e.changes = e.changes.Merge(react(e.Values()))
	}
}

func (e *Edit) SetType(t Type) {
	e.set(Patch{Type: Some(t)}, OnChangeType)
}

func (e *Edit) SetFirstName(v string) {
	e.set(Patch{FirstName: String(v)}, OnChangeFirstName)
}

func (e *Edit) SetLastName(v string) {
	e.set(Patch{LastName: String(v)}, OnChangeLastName)
}

func (e *Edit) SetNameOrder(o NameOrder) {
	e.set(Patch{NameOrder: Some(o)}, OnChangeNameOrder)
}

func (e *Edit) SetDisplayName(v string) {
	e.set(Patch{DisplayName: String(v)}, OnChangeDisplayName)
}

func (e *Edit) SetGender(g Gender) {
	e.set(Patch{Gender: Some(g)}, nil)
}

func (e *Edit) SetActive(v bool) {
	e.set(Patch{Active: Some(v)}, nil)
}

// ReadOnly reports the current read-only state of f.
func (e *Edit) ReadOnly(f Field) bool {
	return ReadOnly(f, e.Contact())
}

// Required reports the current required state of f.
func (e *Edit) Required(f Field) bool {
	return Required(f, e.Contact())
}
