package converge_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deltarun/converge"
	"github.com/katalvlaran/deltarun/numeric"
)

// scenario is one entry of testdata/scenarios.yaml.
type scenario struct {
	Name     string `yaml:"name"`
	Target   []int  `yaml:"target"`
	Source   []int  `yaml:"source"`
	Selector string `yaml:"selector"`
	Steps    int    `yaml:"steps"`
	Error    string `yaml:"error"`
}

// loadScenarios decodes the scenario file, rejecting unknown fields.
func loadScenarios(t *testing.T, path string) []scenario {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)

	var out []scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(&out), "decode %s", path)
	require.NotEmpty(t, out, "no scenarios in %s", path)

	return out
}

// selectorByName maps a scenario selector name to an int Selector.
func selectorByName(name string) (converge.Selector[int], error) {
	switch name {
	case "first":
		return converge.First[int], nil
	case "last":
		return converge.Last[int], nil
	case "widest":
		return converge.Widest[int], nil
	case "largest":
		return converge.Largest[int](numeric.Exact[int]{}), nil
	case "decline":
		return converge.Decline[int], nil
	default:
		return nil, fmt.Errorf("unknown selector %q", name)
	}
}
