package machine

// Kind distinguishes how a machine's halting tape is interpreted.
type Kind string

const (
	// KindRecognizer machines are run for their verdict: does the input
	// belong to the language or not.
	KindRecognizer Kind = "recognizer"
	// KindTransformer machines are run for their output: the tape content
	// left behind after an accepting run.
	KindTransformer Kind = "transformer"
)

// Definition is the declarative description of a machine before compilation.
//
// Loaders (YAML files, in-memory fixtures, remote payloads) produce a
// Definition; NewTable validates it and freezes it into a Table. A Definition
// on its own makes no guarantees: states may be missing, rules may collide.
type Definition struct {
	// Name labels the machine in logs, exports and journals. Optional.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Kind defaults to KindRecognizer when empty.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// States is the finite control set Q. Initial and Final must be members.
	States  []State `json:"states" yaml:"states"`
	Initial State   `json:"initial" yaml:"initial"`
	Final   State   `json:"final" yaml:"final"`

	// Alphabet is the input alphabet; TapeAlphabet is its superset of
	// symbols that may appear on the tape. The blank symbol belongs to
	// TapeAlphabet only.
	Alphabet     []Symbol `json:"alphabet" yaml:"alphabet"`
	TapeAlphabet []Symbol `json:"tape_alphabet" yaml:"tape_alphabet"`

	// Rules is the flat transition list. Order is irrelevant; duplicates
	// by (state, symbol) are a definition error.
	Rules []Rule `json:"rules" yaml:"rules"`
}

// EffectiveKind returns the machine kind, defaulting to KindRecognizer.
func (d *Definition) EffectiveKind() Kind {
	if d.Kind == KindTransformer {
		return KindTransformer
	}
	return KindRecognizer
}
