package palette

// Resolver assigns palette colors to category titles in first-seen order
// and accumulates a running total per title.
//
// The assignment rule is positional: the Nth distinct title receives
// palette entry N modulo the palette length. Because assignment depends
// only on encounter order, identical data produces identical colors on
// every render.
//
// A Resolver is scoped to a single render (timelines use one per track).
// Nothing is shared between resolvers, so colors never leak across
// renders or tracks.
type Resolver struct {
	palette Palette
	order   []string
	colors  map[string]string
	totals  map[string]float64
}

// Category is one resolved title with its color and accumulated total,
// in first-seen order.
type Category struct {
	Title string
	Color string
	Total float64
}

// NewResolver creates an empty resolver over p.
func NewResolver(p Palette) *Resolver {
	return &Resolver{
		palette: p,
		colors:  make(map[string]string),
		totals:  make(map[string]float64),
	}
}

// Resolve returns the color for title, assigning the next palette entry
// on first encounter.
func (r *Resolver) Resolve(title string) string {
	if c, ok := r.colors[title]; ok {
		return c
	}
	c := r.palette.At(len(r.order))
	r.order = append(r.order, title)
	r.colors[title] = c
	return c
}

// Accumulate adds amount to the running total for title. The title is
// resolved first so that accumulation alone still claims a color slot.
func (r *Resolver) Accumulate(title string, amount float64) {
	r.Resolve(title)
	r.totals[title] += amount
}

// Categories returns all resolved titles in first-seen order.
func (r *Resolver) Categories() []Category {
	out := make([]Category, 0, len(r.order))
	for _, title := range r.order {
		out = append(out, Category{
			Title: title,
			Color: r.colors[title],
			Total: r.totals[title],
		})
	}
	return out
}

// Len returns the number of distinct titles seen.
func (r *Resolver) Len() int {
	return len(r.order)
}
