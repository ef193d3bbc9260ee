package carousel

// Offset returns the horizontal offset, in percent of the viewport width, of the
// slide at ordinal when index is front-most.
func Offset(ordinal, index int) int {
	return (ordinal - index) * 100
}

// Resolve maps an index of the clone-bounded sequence onto the real slide it
// shows. The second result reports whether index was a clone.
// Index 0 mirrors the last real slide and realCount+1 mirrors the first.
func Resolve(index, realCount int) (int, bool) {
	switch index {
	case 0:
		return realCount, true
	case realCount + 1:
		return 1, true
	}
	return index, false
}

// BuildSequence wraps the real slides with the two boundary clones and assigns
// ordinals. slides must not be empty.
func BuildSequence(slides []Slide) []Slide {
	n := len(slides)
	seq := make([]Slide, 0, n+2)
	seq = append(seq, Slide{Source: slides[n-1].Source, IsClone: true})
	for _, s := range slides {
		seq = append(seq, Slide{Source: s.Source})
	}
	seq = append(seq, Slide{Source: slides[0].Source, IsClone: true})
	for i := range seq {
		seq[i].Ordinal = i
	}
	return seq
}
