package yamlfile

// document mirrors the on-disk machine file. Field values stay loosely typed
// until decoding: authors write states and symbols as bare scalars, so ints
// and nulls are legal YAML where the engine expects strings.
type document struct {
	Name         string      `mapstructure:"name"`
	Kind         string      `mapstructure:"kind"`
	QStates      qStates     `mapstructure:"q_states"`
	Alphabet     []string    `mapstructure:"alphabet"`
	TapeAlphabet []string    `mapstructure:"tape_alphabet"`
	Delta        []deltaRule `mapstructure:"delta"`

	SimulationStrings []string    `mapstructure:"simulation_strings"`
	SimulationCases   []caseEntry `mapstructure:"simulation_cases"`

	MaxSteps int `mapstructure:"max_steps"`
}

type qStates struct {
	QList   []string `mapstructure:"q_list"`
	Initial string   `mapstructure:"initial"`
	Final   string   `mapstructure:"final"`
}

// deltaRule is one transition in params/output form. The optional
// mem_cache_value fields drive the cache register: a rule may require a
// held symbol and replace it.
type deltaRule struct {
	Params deltaParams `mapstructure:"params"`
	Output deltaOut    `mapstructure:"output"`
}

type deltaParams struct {
	InitialState  string `mapstructure:"initial_state"`
	MemCacheValue string `mapstructure:"mem_cache_value"`
	TapeInput     string `mapstructure:"tape_input"`
}

type deltaOut struct {
	FinalState       string `mapstructure:"final_state"`
	MemCacheValue    string `mapstructure:"mem_cache_value"`
	TapeOutput       string `mapstructure:"tape_output"`
	TapeDisplacement string `mapstructure:"tape_displacement"`
}

type caseEntry struct {
	Input  string `mapstructure:"input"`
	Expect string `mapstructure:"expect"`
}

// normalize maps the spellings of "nothing" found in machine files (YAML
// null, the literal string None, the empty string) onto the blank symbol.
func normalize(value string) string {
	if value == "" || value == "None" {
		return "_"
	}
	return value
}
