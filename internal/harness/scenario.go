package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Scenario is a named list of puzzle inputs with their expected answers.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	Description string `yaml:"description" json:"description,omitempty"`

	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is one input file checked against one or both parts of a day.
type Case struct {
	Day int `yaml:"day" json:"day"`

	// Input is the path as written in the scenario file.
	Input string `yaml:"input" json:"input"`

	// Part1 and Part2 are the expected answers. Nil means the part is
	// not checked.
	Part1 *int64 `yaml:"part1,omitempty" json:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty" json:"part2,omitempty"`

	// path is Input resolved against the scenario directory.
	path string
}

// Expected returns the expected answer for part, if one was given.
func (c Case) Expected(part int) (int64, bool) {
	var p *int64
	switch part {
	case 1:
		p = c.Part1
	case 2:
		p = c.Part2
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Path returns the input file location resolved against the scenario file.
func (c Case) Path() string {
	if c.path != "" {
		return c.path
	}
	return c.Input
}

// LoadScenario reads and validates a scenario YAML file. Input paths are
// resolved relative to the directory containing path.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and validates a scenario YAML file,
// resolving relative input paths against basePath.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	for i := range scenario.Cases {
		c := &scenario.Cases[i]
		c.path = c.Input
		if !filepath.IsAbs(c.Input) && basePath != "" {
			c.path = filepath.Join(basePath, c.Input)
		}
		if _, err := os.Stat(c.path); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid scenario: cases[%d]: input file not found: %s", i, c.Input)
		}
	}

	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML. Input paths are left
// as written.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "part_1:" for "part1:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks s against the CUE schema, then checks the rules
// the schema does not express.
func validateScenario(s *Scenario) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.Encode(s)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	for i, c := range s.Cases {
		if c.Part1 == nil && c.Part2 == nil {
			return fmt.Errorf("cases[%d]: at least one of part1 or part2 is required", i)
		}
	}
	return nil
}
