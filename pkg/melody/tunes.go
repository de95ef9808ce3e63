package melody

// Rest is the note name for silence.
const Rest = " "

// Note is a pitch name held for a number of beats.
type Note struct {
	Name  string
	Beats uint32
}

// Tune is a sequence of notes.
type Tune []Note

// tones maps note names to frequencies in Hz.
var tones = map[string]uint32{
	"e0":  165,
	"f0":  175,
	"f0+": 185,
	"g0":  196,
	"g0+": 208,
	"a0":  220,
	"a0+": 233,
	"b0":  245,
	"c":   261,
	"c+":  277,
	"d":   294,
	"d+":  311,
	"e":   329,
	"f":   349,
	"f+":  370,
	"g":   392,
	"g+":  415,
	"a":   440,
	"a+":  466,
	"b":   493,
	"c2":  523,
	"d2":  594,
}

// Frequency returns the frequency of a note name.
func Frequency(name string) (uint32, bool) {
	hz, ok := tones[name]
	return hz, ok
}

// tunes holds the built-in tunes by name.
var tunes = map[string]Tune{
	"twinkle": {
		{"c", 1}, {"c", 1}, {"g", 1}, {"g", 1}, {"a", 1}, {"a", 1}, {"g", 2},
		{"f", 1}, {"f", 1}, {"e", 1}, {"e", 1}, {"d", 1}, {"d", 1}, {"c", 2},
		{Rest, 4},
	},
	"scale": {
		{"c", 1}, {"c+", 1}, {"d", 1}, {"d+", 1}, {"e", 1}, {"f", 1},
		{"f+", 1}, {"g", 1}, {"g+", 1}, {"a+", 1}, {"a", 1}, {"b", 1},
		{Rest, 4},
	},
	"megalovania": {
		{"d", 1}, {"d", 1}, {"d2", 2}, {"a", 2}, {Rest, 1}, {"g+", 1}, {Rest, 1},
		{"g", 1}, {Rest, 1}, {"f", 2}, {"d", 1}, {"f", 1}, {"g", 1},
		// bar 2
		{"c", 1}, {"c", 1}, {"d2", 2}, {"a", 2}, {Rest, 1}, {"g+", 1}, {Rest, 1},
		{"g", 1}, {Rest, 1}, {"f", 2}, {"d", 1}, {"f", 1}, {"g", 1},
		// bar 3
		{"b0", 1}, {"b0", 1}, {"d2", 2}, {"a", 2}, {Rest, 1}, {"g+", 1}, {Rest, 1},
		{"g", 1}, {Rest, 1}, {"f", 2}, {"d", 1}, {"f", 1}, {"g", 1},
		// bar 4
		{"a0+", 1}, {"a0+", 1}, {"d2", 2}, {"a", 2}, {Rest, 1}, {"g+", 1}, {Rest, 1},
		{"g", 1}, {Rest, 1}, {"f", 2}, {"d", 1}, {"f", 1}, {"g", 1},
		// main
		{"f", 2}, {"f", 1}, {"f", 1}, {Rest, 1}, {"f", 1}, {Rest, 1}, {"f", 2},
		{"d", 1}, {Rest, 1}, {"d", 5},
		{"f", 2}, {"f", 1}, {"f", 1}, {Rest, 1}, {"g", 1}, {Rest, 1}, {"g+", 3},
		{"g", 2}, {"d", 1}, {"f", 1}, {"g", 1},
	},
	"mario": {
		{"e", 2}, {"e", 2}, {Rest, 2}, {"e", 2}, {Rest, 2}, {"c", 2}, {"e", 4},
		{"g", 4}, {Rest, 4}, {"g0", 4}, {Rest, 4},
		// main
		{"c", 4}, {Rest, 2}, {"g0", 4}, {Rest, 2}, {"e0", 4}, {Rest, 2},
		{"a0", 4}, {"b0", 4}, {"a0+", 2}, {"a0", 4}, {"g0", 3}, {"e", 3},
		{"g", 3}, {"a", 4}, {"f", 2}, {"g", 2}, {Rest, 2}, {"e", 4}, {"c", 2},
		{"d", 2}, {"b0", 4},
	},
}
