package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"sync/atomic"

	"flightbooking/internal/domain/models"

	ds "github.com/starfederation/datastar-go/datastar"
)

// containerTarget wraps rows in the container fragment named by template and
// morphs it into the page by element id.
type containerTarget struct {
	sse      *ds.ServerSentEventGenerator
	template string
}

func (t containerTarget) ReplaceContents(rows string) error {
	html, err := fragment(t.template, template.HTML(rows))
	if err != nil {
		return err
	}
	return t.sse.PatchElements(html)
}

var chartSeq atomic.Uint64

// canvasTarget draws a Chart.js chart into the canvas with id canvasID.
type canvasTarget struct {
	sse      *ds.ServerSentEventGenerator
	canvasID string
}

func (t canvasTarget) Draw(cfg models.ChartConfig) (models.ChartHandle, error) {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return models.ChartHandle{}, err
	}
	idJSON, err := json.Marshal(t.canvasID)
	if err != nil {
		return models.ChartHandle{}, err
	}

	script := fmt.Sprintf("new Chart(document.getElementById(%s), %s)", idJSON, cfgJSON)
	if err := t.sse.ExecuteScript(script); err != nil {
		return models.ChartHandle{}, err
	}
	return models.ChartHandle{Target: t.canvasID, Seq: chartSeq.Add(1)}, nil
}
