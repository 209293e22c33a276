package recbridge

// Shared records for the value-transfer model. Field order matches the C
// layout in internal/bindings/recbridge.h; a record that crosses the
// boundary arrives as an independent deep copy, so neither side observes
// the other's later mutations.

// Address is the leaf shared record.
type Address struct {
	Street     string
	City       string
	PostalCode string
}

// Clone returns an independent deep copy of the address.
func (a Address) Clone() Address {
	return Address{
		Street:     cloneString(a.Street),
		City:       cloneString(a.City),
		PostalCode: cloneString(a.PostalCode),
	}
}

// View returns the read capability over the address.
func (a *Address) View() AddressView { return addressValue{a} }

// ContactInfo is a shared record owning one Address by value.
type ContactInfo struct {
	Email   string
	Phone   string
	Address Address
}

// Clone returns an independent deep copy of the contact record.
func (c ContactInfo) Clone() ContactInfo {
	return ContactInfo{
		Email:   cloneString(c.Email),
		Phone:   cloneString(c.Phone),
		Address: c.Address.Clone(),
	}
}

// View returns the read capability over the contact record.
func (c *ContactInfo) View() ContactView { return contactValue{c} }

// Person is the root shared record.
type Person struct {
	Age     uint32
	Height  float64
	Name    string
	Contact ContactInfo
}

// Clone returns an independent deep copy of the person record, the same
// copy a boundary transfer performs.
func (p Person) Clone() Person {
	return Person{
		Age:     p.Age,
		Height:  p.Height,
		Name:    cloneString(p.Name),
		Contact: p.Contact.Clone(),
	}
}

// View returns the read capability over the person record. Reads through
// the view are plain field accesses; no boundary crossing occurs.
func (p *Person) View() PersonView { return personValue{p} }

// Materialize captures the record behind a view into an owned Person value,
// performing the same full structural copy a boundary transfer does. Reads
// on the result are plain field accesses and never touch the source again.
func Materialize(v PersonView) Person {
	contact := v.Contact()
	addr := contact.Address()
	return Person{
		Age:    v.Age(),
		Height: v.Height(),
		Name:   cloneString(v.Name()),
		Contact: ContactInfo{
			Email: cloneString(contact.Email()),
			Phone: cloneString(contact.Phone()),
			Address: Address{
				Street:     cloneString(addr.Street()),
				City:       cloneString(addr.City()),
				PostalCode: cloneString(addr.PostalCode()),
			},
		},
	}
}

// cloneString forces a fresh backing array so the copy shares no memory
// with the source. Go string assignment aliases the backing bytes, which
// is fine within one side but not for a record that models a boundary
// transfer.
func cloneString(s string) string {
	if s == "" {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, s)
	return string(b)
}

// Value-model view adapters.

type addressValue struct{ a *Address }

func (v addressValue) Street() string     { return v.a.Street }
func (v addressValue) City() string       { return v.a.City }
func (v addressValue) PostalCode() string { return v.a.PostalCode }

type contactValue struct{ c *ContactInfo }

func (v contactValue) Email() string        { return v.c.Email }
func (v contactValue) Phone() string        { return v.c.Phone }
func (v contactValue) Address() AddressView { return addressValue{&v.c.Address} }

type personValue struct{ p *Person }

func (v personValue) Age() uint32          { return v.p.Age }
func (v personValue) Height() float64      { return v.p.Height }
func (v personValue) Name() string         { return v.p.Name }
func (v personValue) Contact() ContactView { return contactValue{&v.p.Contact} }
