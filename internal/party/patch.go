package party

// Opt is a patch value that is either absent, explicitly null, or set.
type Opt[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns a set value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{set: true, value: v}
}

// Null returns an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{set: true, null: true}
}

// String returns Some(s), or Null when s is empty.
func String(s string) Opt[string] {
	if s == "" {
		return Null[string]()
	}
	return Some(s)
}

// IsSet reports whether the value is present in the patch, null included.
func (o Opt[T]) IsSet() bool { return o.set }

// IsNull reports whether the value is an explicit null.
func (o Opt[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether it is set and non-null.
func (o Opt[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Or returns the value, or def when absent or null.
func (o Opt[T]) Or(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

func (o Opt[T]) merge(next Opt[T]) Opt[T] {
	if next.set {
		return next
	}
	return o
}

// Patch is a set of pending field edits, as produced by a form or an import
// and consumed by the persistence hooks.
type Patch struct {
	Type        Opt[Type]
	Name        Opt[string]
	DisplayName Opt[string]
	FirstName   Opt[string]
	LastName    Opt[string]
	NameOrder   Opt[NameOrder]
	Gender      Opt[Gender]
	Active      Opt[bool]
}

// Merge returns p overlaid with every field set in next.
func (p Patch) Merge(next Patch) Patch {
	return Patch{
		Type:        p.Type.merge(next.Type),
		Name:        p.Name.merge(next.Name),
		DisplayName: p.DisplayName.merge(next.DisplayName),
		FirstName:   p.FirstName.merge(next.FirstName),
		LastName:    p.LastName.merge(next.LastName),
		NameOrder:   p.NameOrder.merge(next.NameOrder),
		Gender:      p.Gender.merge(next.Gender),
		Active:      p.Active.merge(next.Active),
	}
}

// Empty reports whether the patch carries no edit at all.
func (p Patch) Empty() bool {
	return p == Patch{}
}
