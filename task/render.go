package task

// Density is a sizing hint for the visible list.
type Density int

const (
	// DensityCompact fits up to two tasks.
	DensityCompact Density = iota

	// DensityMedium fits up to four tasks.
	DensityMedium

	// DensityScroll caps the list height; extra tasks scroll.
	DensityScroll
)

// DensityFor returns the density tier for a visible task count.
func DensityFor(count int) Density {
	switch {
	case count <= 2:
		return DensityCompact
	case count <= 4:
		return DensityMedium
	default:
		return DensityScroll
	}
}

// Rows returns the number of list rows a shell reserves for the tier.
func (d Density) Rows() int {
	switch d {
	case DensityCompact:
		return 2
	case DensityMedium:
		return 4
	default:
		return 6
	}
}

func (d Density) String() string {
	switch d {
	case DensityCompact:
		return "compact"
	case DensityMedium:
		return "medium"
	default:
		return "scroll"
	}
}

// View is the visible subset of a collection under a filter.
type View struct {
	// Filter is the filter the view was derived with.
	Filter Filter

	// Tasks are the matching tasks in collection order.
	Tasks []Task

	// Total is the size of the whole collection.
	Total int

	// Density is the sizing hint for len(Tasks).
	Density Density
}

// Render selects the tasks visible under filter, preserving order.
// It never modifies tasks.
func Render(tasks []Task, filter Filter) View {
	if !filter.IsValid() {
		filter = FilterAll
	}
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Match(t) {
			visible = append(visible, t)
		}
	}
	return View{
		Filter:  filter,
		Tasks:   visible,
		Total:   len(tasks),
		Density: DensityFor(len(visible)),
	}
}
