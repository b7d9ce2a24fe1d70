package morph

import "github.com/dorjeduck/morph/ease"

// An EasingResolver picks the easing function for one field of one
// transition. Resolution order, first hit wins:
//
//  1. the segment override (this particular transition),
//  2. the instance override (the state being animated),
//  3. the state type's default for the field,
//  4. linear.
type EasingResolver struct {
	// Segment holds per-transition overrides keyed by field name.
	Segment map[string]ease.Func
}

// Resolve returns the easing for a field of st, never nil.
func (r *EasingResolver) Resolve(field string, st State) ease.Func {
	if r != nil {
		if f, ok := r.Segment[field]; ok && f != nil {
			return f
		}
	}
	if st != nil {
		if f, ok := st.EasingFor(field); ok && f != nil {
			return f
		}
		if f, ok := st.DefaultEasing(field); ok && f != nil {
			return f
		}
	}
	return ease.Linear
}
