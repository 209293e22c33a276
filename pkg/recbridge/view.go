package recbridge

// AddressView is the read capability for an address record, regardless of
// which side owns the underlying data.
type AddressView interface {
	Street() string
	City() string
	PostalCode() string
}

// ContactView is the read capability for a contact record.
type ContactView interface {
	Email() string
	Phone() string
	Address() AddressView
}

// PersonView is the read capability for a person record. Both access models
// implement it: handles resolve each call through a foreign accessor, value
// records answer from the owned copy.
type PersonView interface {
	// Age returns the person's age in years.
	Age() uint32
	// Height returns the person's height in meters.
	Height() float64
	// Name returns the person's name.
	Name() string
	// Contact returns the view of the nested contact record.
	Contact() ContactView
}
