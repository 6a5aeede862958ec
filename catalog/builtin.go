package catalog

import "github.com/katalvlaran/fractal/ifs"

// Canonical names of the built-in systems.
const (
	Sierpinski = "sierpinski"
	BinaryTree = "tree"
	Barnsley   = "barnsley"
	Dragon     = "dragon"
)

// builtin describes one static table entry. Each map is given as the
// row-major coefficients (a, b, c, d, e, f) of [[a b] [c d]]·z + [e f].
type builtin struct {
	name    string
	aliases []string
	maps    [][6]float64
	weights []float64
}

var builtins = []builtin{
	{
		name:    Sierpinski,
		aliases: []string{"sierp"},
		// Map order is chosen so that the map index matches the address digit.
		maps: [][6]float64{
			{0.5, 0, 0, 0.5, 0, 0.5},
			{0.5, 0, 0, 0.5, 0, 0},
			{0.5, 0, 0, 0.5, 0.5, 0},
		},
		weights: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
	},
	{
		name:    BinaryTree,
		aliases: []string{"binarytree"},
		maps: [][6]float64{
			{0, 0, 0, 0.5, 0, 0},
			{0.42, -0.42, 0.42, 0.42, 0, 0.2},
			{0.42, 0.42, -0.42, 0.42, 0, 0.2},
			{0.1, 0, 0, 0.1, 0, 0.2},
		},
		weights: []float64{0.05, 0.4, 0.4, 0.15},
	},
	{
		name:    Barnsley,
		aliases: []string{"fern", "barnsleyfern"},
		maps: [][6]float64{
			{0, 0, 0, 0.16, 0, 0},
			{0.85, 0.04, -0.04, 0.85, 0, 1.6},
			{0.2, -0.26, 0.23, 0.22, 0, 1.6},
			{-0.15, 0.28, 0.26, 0.24, 0, 0.44},
		},
		weights: []float64{0.01, 0.85, 0.07, 0.07},
	},
	{
		name:    Dragon,
		aliases: []string{"heighwaydragon"},
		maps: [][6]float64{
			{0.5, -0.5, 0.5, 0.5, 0, 0},
			{-0.5, -0.5, 0.5, -0.5, 1, 0},
		},
		weights: []float64{0.5, 0.5},
	},
}

// definition converts the static table into an ifs.Definition.
// The tables are constants, so failure is a programming error.
func (b builtin) definition() *ifs.Definition {
	maps := make([]ifs.AffineMap, len(b.maps))
	for i, c := range b.maps {
		maps[i] = ifs.MustAffineMap(c[0], c[1], c[2], c[3], c[4], c[5])
	}
	def, err := ifs.FromMaps(maps, b.weights)
	if err != nil {
		panic("catalog: builtin " + b.name + ": " + err.Error())
	}

	return def
}

// newBuiltinRegistry returns a registry holding every built-in entry.
func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		if err := r.Register(b.name, b.definition(), b.aliases...); err != nil {
			panic("catalog: builtin " + b.name + ": " + err.Error())
		}
	}

	return r
}
