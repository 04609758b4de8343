package entity

// Testimonial is a free-form public feed entry. It has no owner.
type Testimonial map[string]any

// reserved keys are assigned by the store and never taken from a payload.
var reservedTestimonialKeys = []string{"_id", "id", "createdAt"}

// Sanitized returns a copy of t without store-assigned keys.
func (t Testimonial) Sanitized() Testimonial {
	out := make(Testimonial, len(t))
	for k, v := range t {
		out[k] = v
	}
	for _, k := range reservedTestimonialKeys {
		delete(out, k)
	}
	return out
}
