package easel

// Config maps option names to values for one shape. Every shape owns its own
// Config; reads and clones copy the map so configuration is never shared by
// reference between shapes.
type Config map[string]any

// defaultConfig holds the default value for every option any shape can carry.
// A shape's Config is built from the subset of keys it declares legal.
var defaultConfig = Config{
	OptFill:       "",
	OptActiveFill: "",
	OptOutline:    "#000000",
	OptWidth:      1,
	OptArrow:      ArrowNone,
	OptText:       "",
	OptJustify:    "center",
	OptFont:       Font{Face: "helvetica", Size: 12, Style: "normal"},
	OptSmooth:     false,
}

// newConfig builds a config restricted to the given legal options, each at its
// default value.
func newConfig(legal ...string) Config {
	c := make(Config, len(legal))
	for _, opt := range legal {
		if v, ok := defaultConfig[opt]; ok {
			c[opt] = v
		}
	}
	return c
}

// clone returns an independent copy. Values are strings, ints, bools, and the
// Font value struct, so a key-by-key copy is a deep copy.
func (c Config) clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
