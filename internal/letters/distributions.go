package letters

// Weights is a categorical distribution over A..Z, indexed by letter offset.
type Weights [26]float64

// FirstNameWeights is the distribution of first letters in US first names.
var FirstNameWeights = Weights{
	0.09732, // A
	0.04452, // B
	0.06532, // C
	0.04419, // D
	0.06148, // E
	0.01092, // F
	0.02579, // G
	0.02783, // H
	0.01792, // I
	0.09966, // J
	0.04840, // K
	0.07009, // L
	0.06946, // M
	0.03119, // N
	0.02135, // O
	0.01178, // P
	0.00136, // Q
	0.04467, // R
	0.04202, // S
	0.03460, // T
	0.00144, // U
	0.00640, // V
	0.02751, // W
	0.00378, // X
	0.00553, // Y
	0.01501, // Z
}

// LastNameWeights is the distribution of first letters in US last names.
var LastNameWeights = Weights{
	0.0375, // A
	0.0896, // B
	0.0638, // C
	0.0565, // D
	0.0203, // E
	0.0363, // F
	0.0534, // G
	0.0559, // H
	0.0076, // I
	0.0136, // J
	0.0570, // K
	0.0524, // L
	0.0828, // M
	0.0213, // N
	0.0163, // O
	0.0527, // P
	0.0026, // Q
	0.0480, // R
	0.1093, // S
	0.0388, // T
	0.0047, // U
	0.0255, // V
	0.0346, // W
	0.0002, // X
	0.0065, // Y
	0.0129, // Z
}

// Sum returns the total probability mass of the distribution.
func (w Weights) Sum() float64 {
	var total float64
	for _, p := range w {
		total += p
	}
	return total
}
