package recbridge

import "sync/atomic"

// MockPerson is an in-memory stand-in for a foreign Person. It satisfies
// PersonView the way a handle does, counting every accessor call as a
// simulated boundary crossing, so tests can assert how often a computation
// reaches across the boundary without needing the native bindings.
type MockPerson struct {
	data      Person
	crossings atomic.Int64
}

// NewMockPerson creates a mock foreign Person holding its own deep copy of
// data.
func NewMockPerson(data Person) *MockPerson {
	return &MockPerson{data: data.Clone()}
}

// Crossings returns the number of simulated boundary crossings so far,
// counted across the person and every nested view derived from it.
func (m *MockPerson) Crossings() int64 { return m.crossings.Load() }

// Age simulates a cross-boundary age read.
func (m *MockPerson) Age() uint32 {
	m.crossings.Add(1)
	return m.data.Age
}

// Height simulates a cross-boundary height read.
func (m *MockPerson) Height() float64 {
	m.crossings.Add(1)
	return m.data.Height
}

// Name simulates a cross-boundary name read.
func (m *MockPerson) Name() string {
	m.crossings.Add(1)
	return m.data.Name
}

// Contact simulates resolving the nested foreign ContactInfo.
func (m *MockPerson) Contact() ContactView {
	m.crossings.Add(1)
	return &mockContactView{data: &m.data.Contact, crossings: &m.crossings}
}

// MockContact is an in-memory stand-in for a foreign ContactInfo, for
// testing ValidateContact without a person around it.
type MockContact struct {
	data      ContactInfo
	crossings atomic.Int64
}

// NewMockContact creates a mock foreign ContactInfo holding its own deep
// copy of data.
func NewMockContact(data ContactInfo) *MockContact {
	return &MockContact{data: data.Clone()}
}

// Crossings returns the number of simulated boundary crossings so far.
func (m *MockContact) Crossings() int64 { return m.crossings.Load() }

// Email simulates a cross-boundary email read.
func (m *MockContact) Email() string {
	m.crossings.Add(1)
	return m.data.Email
}

// Phone simulates a cross-boundary phone read.
func (m *MockContact) Phone() string {
	m.crossings.Add(1)
	return m.data.Phone
}

// Address simulates resolving the nested foreign Address.
func (m *MockContact) Address() AddressView {
	m.crossings.Add(1)
	return &mockAddress{data: &m.data.Address, crossings: &m.crossings}
}

// mockContactView is the nested contact view handed out by MockPerson. It
// shares the person's crossing counter so Crossings covers the whole chain.
type mockContactView struct {
	data      *ContactInfo
	crossings *atomic.Int64
}

func (c *mockContactView) Email() string {
	c.crossings.Add(1)
	return c.data.Email
}

func (c *mockContactView) Phone() string {
	c.crossings.Add(1)
	return c.data.Phone
}

func (c *mockContactView) Address() AddressView {
	c.crossings.Add(1)
	return &mockAddress{data: &c.data.Address, crossings: c.crossings}
}

type mockAddress struct {
	data      *Address
	crossings *atomic.Int64
}

func (a *mockAddress) Street() string {
	a.crossings.Add(1)
	return a.data.Street
}

func (a *mockAddress) City() string {
	a.crossings.Add(1)
	return a.data.City
}

func (a *mockAddress) PostalCode() string {
	a.crossings.Add(1)
	return a.data.PostalCode
}
