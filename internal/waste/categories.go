package waste

// Category is a material class with its higher heating value.
type Category struct {
	Name string
	HHV  float64 // MJ/kg, gross energy content of the dry material class
}

// CategorySet defines the active material classification for an analysis.
// Organic names the category whose fraction drives the minimum realistic
// moisture content of the mixture.
type CategorySet struct {
	Name       string
	Organic    string
	Categories []Category
}

// StandardCategories is the six-class waste breakdown used for mixed
// municipal waste streams.
var StandardCategories = CategorySet{
	Name:    "standard",
	Organic: "Biogenic Waste",
	Categories: []Category{
		{Name: "Plastic", HHV: 36.5},
		{Name: "Paper & Cardboard", HHV: 15.8},
		{Name: "Textiles", HHV: 19.2},
		{Name: "Biogenic Waste", HHV: 11.3},
		{Name: "Inert Materials", HHV: 0.5},
		{Name: "Other Materials", HHV: 9.7},
	},
}

// ExtendedCategories adds a metals class for streams that have not been
// through magnetic separation yet.
var ExtendedCategories = CategorySet{
	Name:    "extended",
	Organic: "Organic Waste",
	Categories: []Category{
		{Name: "Plastic", HHV: 36.5},
		{Name: "Paper & Cardboard", HHV: 15.8},
		{Name: "Metals", HHV: 0},
		{Name: "Textiles", HHV: 19.2},
		{Name: "Organic Waste", HHV: 11.3},
		{Name: "Inert Materials", HHV: 0.5},
		{Name: "Other Materials", HHV: 9.7},
	},
}

// CategorySetByName resolves a named category set. The boolean reports
// whether the name is known.
func CategorySetByName(name string) (CategorySet, bool) {
	switch name {
	case StandardCategories.Name, "":
		return StandardCategories, true
	case ExtendedCategories.Name:
		return ExtendedCategories, true
	}
	return CategorySet{}, false
}

// HHVOf returns the heating value of a named category.
func (s CategorySet) HHVOf(name string) (float64, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c.HHV, true
		}
	}
	return 0, false
}

// Empty returns a composition with every category of the set at zero.
func (s CategorySet) Empty() Composition {
	c := make(Composition, len(s.Categories))
	for _, cat := range s.Categories {
		c[cat.Name] = 0
	}
	return c
}

// HHV computes the mass-weighted higher heating value of the mixture in
// MJ/kg. The composition is taken as already expressed in percent of
// total mass; the result scales linearly with whatever total the caller
// supplies. Categories absent from the set contribute nothing.
func HHV(c Composition, set CategorySet) float64 {
	var sum float64
	for _, cat := range set.Categories {
		sum += c[cat.Name] * cat.HHV
	}
	return sum / 100
}

// MinimumMoisture returns the lowest realistic initial moisture content
// for the mixture, driven by its organic fraction. Organic-rich waste
// cannot arrive drier than roughly 70% of its organic share; the floor
// is capped at 50%.
func MinimumMoisture(c Composition, set CategorySet) float64 {
	m := 0.7 * c[set.Organic]
	if m > 50 {
		m = 50
	}
	return m
}
