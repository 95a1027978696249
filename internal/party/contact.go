package party

import "time"

// Contact is a persisted party record. Empty strings stand for null in the
// optional fields.
type Contact struct {
	ID        int64
	Type      Type
	Name      string
	FirstName string
	LastName  string
	NameOrder NameOrder
	Gender    Gender
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName is the derived display name. It is always the contact name.
func (c Contact) DisplayName() string {
	return c.Name
}

// SetDisplayName edits the display name through the composition rule: an
// organization takes the value as its name, a person keeps the name built
// from its name parts.
func (c *Contact) SetDisplayName(v string) {
	p := c.Values().Merge(Patch{DisplayName: String(v)})
	*c = c.Apply(OnChangeDisplayName(p))
}

// IsPerson reports whether the contact is a person.
func (c Contact) IsPerson() bool { return c.Type == TypePerson }

// Values returns the contact as a complete patch, the shape the reactions
// expect as the current in-progress values.
func (c Contact) Values() Patch {
	p := Patch{
		Name:        String(c.Name),
		DisplayName: String(c.Name),
		FirstName:   String(c.FirstName),
		LastName:    String(c.LastName),
		Active:      Some(c.Active),
	}
	if c.Type != "" {
		p.Type = Some(c.Type)
	} else {
		p.Type = Null[Type]()
	}
	if c.NameOrder != "" {
		p.NameOrder = Some(c.NameOrder)
	} else {
		p.NameOrder = Null[NameOrder]()
	}
	if c.Gender != "" {
		p.Gender = Some(c.Gender)
	} else {
		p.Gender = Null[Gender]()
	}
	return p
}

// Apply returns a copy of c with every field set in p written into it. A set
// Name wins over DisplayName; DisplayName only lands when Name is absent.
func (c Contact) Apply(p Patch) Contact {
	if p.Type.IsSet() {
		c.Type = p.Type.Or("")
	}
	switch {
	case p.Name.IsSet():
		c.Name = p.Name.Or("")
	case p.DisplayName.IsSet():
		c.Name = p.DisplayName.Or("")
	}
	if p.FirstName.IsSet() {
		c.FirstName = p.FirstName.Or("")
	}
	if p.LastName.IsSet() {
		c.LastName = p.LastName.Or("")
	}
	if p.NameOrder.IsSet() {
		c.NameOrder = p.NameOrder.Or("")
	}
	if p.Gender.IsSet() {
		c.Gender = p.Gender.Or("")
	}
	if p.Active.IsSet() {
		c.Active = p.Active.Or(false)
	}
	return c
}

// normalize enforces the type invariants on a record about to be stored:
// organizations lose their person fields, persons get a recomposed name.
func normalize(c Contact) Contact {
	switch c.Type {
	case TypeOrganization:
		return c.Apply(Guard(Patch{Type: Some(c.Type)}))
	case TypePerson:
		return c.Apply(Compose(c.Values()))
	}
	return c
}
