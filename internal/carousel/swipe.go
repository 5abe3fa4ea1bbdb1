package carousel

// MinSwipeDistance is the horizontal travel a touch must exceed to count
// as a swipe.
const MinSwipeDistance = 50

type Direction int

const (
	None Direction = iota
	// Forward is a left swipe; it advances.
	Forward
	// Backward is a right swipe; it retreats.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// ClassifySwipe compares the touch start and end x positions. Travel of
// exactly MinSwipeDistance is not a swipe.
func ClassifySwipe(start, end float64) Direction {
	distance := start - end
	switch {
	case distance > MinSwipeDistance:
		return Forward
	case distance < -MinSwipeDistance:
		return Backward
	default:
		return None
	}
}

// Swipe applies the gesture from start to end and reports how it was
// classified.
func (c *Carousel) Swipe(start, end float64) (State, Direction) {
	switch d := ClassifySwipe(start, end); d {
	case Forward:
		return c.Advance(), d
	case Backward:
		return c.Retreat(), d
	default:
		return c.State(), d
	}
}
