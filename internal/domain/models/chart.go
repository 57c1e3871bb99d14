package models

// ChartKind is the Chart.js chart type.
type ChartKind string

const (
	ChartBar       ChartKind = "bar"
	ChartLine      ChartKind = "line"
	ChartPie       ChartKind = "pie"
	ChartDoughnut  ChartKind = "doughnut"
	ChartPolarArea ChartKind = "polarArea"
	ChartRadar     ChartKind = "radar"
	ChartBubble    ChartKind = "bubble"
	ChartScatter   ChartKind = "scatter"
)

var chartKinds = map[ChartKind]struct{}{
	ChartBar:       {},
	ChartLine:      {},
	ChartPie:       {},
	ChartDoughnut:  {},
	ChartPolarArea: {},
	ChartRadar:     {},
	ChartBubble:    {},
	ChartScatter:   {},
}

func (k ChartKind) Valid() bool {
	_, ok := chartKinds[k]
	return ok
}

// ChartSpec is the caller-owned input of a chart render.
type ChartSpec struct {
	Labels       []string
	Data         []float64
	Kind         ChartKind
	Colors       []string
	BorderColors []string
}

// ChartConfig mirrors the configuration object accepted by `new Chart(ctx, config)`.
type ChartConfig struct {
	Type    ChartKind    `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderWidth     int       `json:"borderWidth"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
	BorderColor     []string  `json:"borderColor,omitempty"`
}

type ChartOptions struct {
	Scales ChartScales `json:"scales"`
}

type ChartScales struct {
	Y ChartAxis `json:"y"`
}

type ChartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// ChartHandle identifies one chart instance drawn into a target.
type ChartHandle struct {
	Target string `json:"target"`
	Seq    uint64 `json:"seq"`
}
