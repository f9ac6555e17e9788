package emit

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes results as a YAML sequence.
func YAML(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
