package party

import "github.com/tartampluch/go-partytype/internal/config"

// JoinName assembles a person name according to order. The separator is only
// inserted when both parts are non-empty. ok is false for an unknown order.
func JoinName(order NameOrder, first, last string) (name string, ok bool) {
	var a, b, sep string
	switch order {
	case NameOrderFirstLast:
		a, b, sep = first, last, config.SepSpace
	case NameOrderLastFirst:
		a, b, sep = last, first, config.SepSpace
	case NameOrderLastCommaFirst:
		a, b, sep = last, first, config.SepComma
	default:
		return "", false
	}
	if a != "" && b != "" {
		return a + sep + b, true
	}
	return a + b, true
}

// Compose computes the name and display name patch for the given values.
//
// Persons get their name built from the name parts. Organizations keep the
// name carried by p, if any. Any other type nulls both. DisplayName always
// mirrors Name, and is nulled when no name could be computed.
func Compose(p Patch) Patch {
	var res Patch

	typ, _ := p.Type.Get()
	switch typ {
	case TypePerson:
		order, _ := p.NameOrder.Get()
		if name, ok := JoinName(order, p.FirstName.Or(""), p.LastName.Or("")); ok {
			res.Name = Some(name)
		}
	case TypeOrganization:
		if p.Name.IsSet() {
			res.Name = p.Name
		}
	default:
		res.Name = Null[string]()
	}

	if res.Name.IsSet() {
		res.DisplayName = res.Name
	} else {
		res.DisplayName = Null[string]()
	}
	return res
}

// Guard strips the person fields from a patch switching to organization.
// Any other patch is returned unchanged.
func Guard(p Patch) Patch {
	if typ, ok := p.Type.Get(); ok && typ == TypeOrganization {
		p.FirstName = Null[string]()
		p.LastName = Null[string]()
		p.NameOrder = Null[NameOrder]()
		p.Gender = Null[Gender]()
	}
	return p
}

func OnChangeFirstName(p Patch) Patch { return Compose(p) }

func OnChangeLastName(p Patch) Patch { return Compose(p) }

func OnChangeNameOrder(p Patch) Patch { return Compose(p) }

// OnChangeDisplayName resolves a direct display name edit through Compose.
func OnChangeDisplayName(p Patch) Patch {
	if !p.Type.IsSet() {
		return Patch{}
	}
	p.Name = p.DisplayName
	return Compose(p)
}

// OnChangeType clears what the new type does not use and invalidates the
// composed name.
func OnChangeType(p Patch) Patch {
	if !p.Type.IsSet() {
		return Patch{}
	}
	res := Guard(Patch{Type: p.Type})
	res.Name = Null[string]()
	res.DisplayName = Null[string]()
	return res
}
