package recbridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIndependence(t *testing.T) {
	original := samplePerson()
	snapshot := samplePerson()

	clone := original.Clone()

	// Mutating the original must not reach the clone.
	original.Age = 99
	original.Name = "Mallory"
	original.Contact.Email = "mallory@example.com"
	original.Contact.Address.City = "Gotham"

	if diff := cmp.Diff(snapshot, clone); diff != "" {
		t.Errorf("clone changed with its source (-want +got):\n%s", diff)
	}
}

func TestCloneIndependenceReverse(t *testing.T) {
	original := samplePerson()
	snapshot := samplePerson()

	clone := original.Clone()

	// Mutating the clone must not reach the original either.
	clone.Contact.Address.PostalCode = "00000"
	clone.Name = "Eve"

	if diff := cmp.Diff(snapshot, original); diff != "" {
		t.Errorf("source changed with its clone (-want +got):\n%s", diff)
	}
}

func TestMaterializeCopiesOnce(t *testing.T) {
	mock := NewMockPerson(samplePerson())

	value := Materialize(mock)

	if diff := cmp.Diff(samplePerson(), value); diff != "" {
		t.Fatalf("materialized value differs from source (-want +got):\n%s", diff)
	}

	copied := mock.Crossings()
	if copied == 0 {
		t.Fatal("Materialize performed no boundary crossings")
	}

	// Once transferred, reads run entirely on the owned copy.
	info := ProcessPerson(value.View())
	if info.City != "Boston" {
		t.Errorf("ProcessPerson on the copy: city = %q, want Boston", info.City)
	}
	AnalyzeHealth(value.View(), 70.0)

	if got := mock.Crossings(); got != copied {
		t.Errorf("value-model reads crossed the boundary %d more times", got-copied)
	}
}

func TestValueViewMatchesMock(t *testing.T) {
	p := samplePerson()
	mock := NewMockPerson(p)

	// Both access models must produce identical results for the same data.
	fromValue := ProcessPerson(p.View())
	fromMock := ProcessPerson(mock)

	if diff := cmp.Diff(fromValue, fromMock); diff != "" {
		t.Errorf("access models disagree (-value +mock):\n%s", diff)
	}
}

func TestMockPersonOwnsItsCopy(t *testing.T) {
	p := samplePerson()
	mock := NewMockPerson(p)

	p.Name = "Mallory"
	p.Contact.Address.City = "Gotham"

	if got := mock.Name(); got != "Alice" {
		t.Errorf("mock observed source mutation: name = %q", got)
	}
	if got := mock.Contact().Address().City(); got != "Boston" {
		t.Errorf("mock observed source mutation: city = %q", got)
	}
}
