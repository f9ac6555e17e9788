// Package batch translates many named constructs in one run.
//
// A batch file is YAML:
//
//	constructs:
//	  - name: add
//	    source: '"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)'
//
// Every construct is translated on its own; a failing construct is reported
// and the run goes on with the next one.
package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/gccasm/translate"
)

// Construct is one entry of a batch file.
type Construct struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// File is a parsed batch file.
type File struct {
	Constructs []Construct `yaml:"constructs"`
}

// Load decodes a batch file. Constructs without a name are named after their
// position, e.g. "#2".
func Load(r io.Reader) (*File, error) {
	f := &File{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, err
	}

	seen := make(map[string]bool, len(f.Constructs))
	for i := range f.Constructs {
		c := &f.Constructs[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("#%d", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("construct %q is defined twice", c.Name)
		}
		seen[c.Name] = true
	}

	return f, nil
}

// LoadFile decodes the batch file at path.
func LoadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	f, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Sink receives the outcome of every construct, in file order.
type Sink interface {
	// Translated accepts a block. An error stops the run.
	Translated(c Construct, b *translate.Block) error
	// Failed is told about a construct that did not translate.
	Failed(c Construct, err error)
}

// ConstructError is the failure of one construct.
type ConstructError struct {
	Name string
	Err  error
}

func (e *ConstructError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *ConstructError) Unwrap() error { return e.Err }

// Run translates every construct of f and hands the outcomes to sink. The
// returned error aggregates the failed constructs as *ConstructError values,
// or is the sink's error if the sink gave up.
func Run(tr *translate.Translator, f *File, sink Sink) error {
	var failed *multierror.Error

	for _, c := range f.Constructs {
		b, err := tr.TranslateSource(c.Name, c.Source)
		if err != nil {
			sink.Failed(c, err)
			failed = multierror.Append(failed, &ConstructError{Name: c.Name, Err: err})
			continue
		}

		if err := sink.Translated(c, b); err != nil {
			return fmt.Errorf("emitting %s: %w", c.Name, err)
		}
	}

	return failed.ErrorOrNil()
}
