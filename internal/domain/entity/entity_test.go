package entity

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeEmail(t *testing.T) {
	c := qt.New(t)
	c.Assert(NormalizeEmail("  Jane@Example.COM "), qt.Equals, "jane@example.com")
	c.Assert(SameEmail("A@b.io", " a@B.io"), qt.IsTrue)
	c.Assert(SameEmail("", ""), qt.IsFalse)
}

func TestListingFilterMatch(t *testing.T) {
	c := qt.New(t)
	l := &Listing{Email: "p@x.io", Price: 20}

	c.Assert(ListingFilter{}.Match(l), qt.IsTrue)
	c.Assert(ListingFilter{MinPrice: ptr(20.0), MaxPrice: ptr(20.0)}.Match(l), qt.IsTrue)
	c.Assert(ListingFilter{MinPrice: ptr(20.5)}.Match(l), qt.IsFalse)
	c.Assert(ListingFilter{MaxPrice: ptr(19.99)}.Match(l), qt.IsFalse)
	c.Assert(ListingFilter{Email: "other@x.io"}.Match(l), qt.IsFalse)

	c.Assert(ListingFilter{}.IsEmpty(), qt.IsTrue)
	c.Assert(ListingFilter{MinPrice: ptr(0.0)}.IsEmpty(), qt.IsFalse)
	c.Assert(ListingFilter{Email: "p@x.io"}.ProviderScoped(), qt.IsTrue)
}

func TestAverageRating(t *testing.T) {
	c := qt.New(t)
	c.Assert((&Listing{}).AverageRating(), qt.Equals, 0.0)
	l := &Listing{Reviews: []Review{{Rating: 4}, {Rating: 5}, {Rating: 3}}}
	c.Assert(l.AverageRating(), qt.Equals, 4.0)
}

func TestListingOwnedBy(t *testing.T) {
	c := qt.New(t)
	l := &Listing{Email: "p@x.io"}
	c.Assert(l.OwnedBy("P@X.io"), qt.IsTrue)
	c.Assert(l.OwnedBy("q@x.io"), qt.IsFalse)
	c.Assert(l.OwnedBy(""), qt.IsFalse)
}

func TestPatchFieldsOnlySetValues(t *testing.T) {
	c := qt.New(t)
	c.Assert(UserPatch{}.Fields(), qt.HasLen, 0)
	c.Assert(UserPatch{Name: ptr("Jane"), Phone: ptr("")}.Fields(), qt.DeepEquals, map[string]any{"name": "Jane", "phone": ""})
	c.Assert(ListingPatch{Price: ptr(12.5), Area: ptr("Dhaka")}.Fields(), qt.DeepEquals, map[string]any{"price": 12.5, "area": "Dhaka"})
}

func TestBookingFilterMatch(t *testing.T) {
	c := qt.New(t)
	b := &Booking{UserEmail: "u@x.io", ProviderEmail: "p@x.io"}
	c.Assert(BookingFilter{}.Match(b), qt.IsTrue)
	c.Assert(BookingFilter{UserEmail: "u@x.io"}.Match(b), qt.IsTrue)
	c.Assert(BookingFilter{ProviderEmail: "q@x.io"}.Match(b), qt.IsFalse)
}

func TestTestimonialSanitized(t *testing.T) {
	c := qt.New(t)
	in := Testimonial{"_id": "x", "id": 1, "createdAt": "then", "name": "Ann", "text": "great"}
	out := in.Sanitized()
	c.Assert(out, qt.DeepEquals, Testimonial{"name": "Ann", "text": "great"})
	c.Assert(in, qt.HasLen, 5)
	c.Assert(ValidRole("admin"), qt.IsTrue)
	c.Assert(ValidRole("root"), qt.IsFalse)
}
