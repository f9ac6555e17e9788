package batch

import (
	"github.com/sarchlab/gccasm/diag"
	"github.com/sarchlab/gccasm/emit"
	"github.com/sarchlab/gccasm/translate"
)

// Collector is a Sink that keeps results and diagnostics in memory.
type Collector struct {
	Results []emit.Result
	Report  diag.Report
	// Sources maps construct names to their source, for rendering
	// diagnostics.
	Sources map[string]string
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{Sources: make(map[string]string)}
}

// Translated records a block.
func (c *Collector) Translated(con Construct, b *translate.Block) error {
	c.Results = append(c.Results, emit.NewResult(con.Name, b))
	c.Report.Translated++
	return nil
}

// Failed records a diagnostic.
func (c *Collector) Failed(con Construct, err error) {
	c.Report.Add(diag.FromError(con.Name, err))
	c.Sources[con.Name] = con.Source
}
