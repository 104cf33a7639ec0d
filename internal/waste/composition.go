package waste

// Composition maps a material category to its share of total input mass
// in percent. Values are non-negative; the total is expected to be close
// to 100 but is never enforced. Normalization is an explicit operation.
type Composition map[string]float64

// Total returns the sum of all category percentages.
func (c Composition) Total() float64 {
	var total float64
	for _, v := range c {
		total += v
	}
	return total
}

// Normalize rescales every category proportionally so the total becomes
// 100%. A composition with zero total is left unchanged. Calling
// Normalize on an already normalized composition is a no-op up to
// floating-point tolerance.
func (c Composition) Normalize() {
	total := c.Total()
	if total == 0 {
		return
	}
	factor := 100 / total
	for k := range c {
		c[k] *= factor
	}
}

// Reset zeroes every category in place.
func (c Composition) Reset() {
	for k := range c {
		c[k] = 0
	}
}

// Clone returns an independent copy of the composition.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ContaminantProfile holds the measured contaminant levels of the waste
// mixture used for EN 15359 classification. Mercury values are expressed
// on an as-received basis.
type ContaminantProfile struct {
	Chlorine      float64 // %
	MercuryMedian float64 // mg/MJ
	Mercury80th   float64 // mg/MJ
}
