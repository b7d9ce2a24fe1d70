package morph

// SimpleMapper establishes no correspondence at all: every source loop
// shrinks to zero at its own position and every destination loop grows from
// zero at its own position, giving a crossfade-like transition with no
// movement. The result length is always n + m. Use it when spatial
// correspondence would look arbitrary.
type SimpleMapper struct{}

func (SimpleMapper) Map(loops1, loops2 []Loop) ([]Loop, []Loop, error) {
	m1 := make([]Loop, 0, len(loops1)+len(loops2))
	m2 := make([]Loop, 0, len(loops1)+len(loops2))

	m1 = append(m1, loops1...)
	m2 = append(m2, zeroLoops(loops1)...)

	m1 = append(m1, zeroLoops(loops2)...)
	m2 = append(m2, loops2...)

	return m1, m2, nil
}
