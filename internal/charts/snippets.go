package charts

// ChartSnippet represents an embeddable ECharts chart fragment.
// Div should contain a single root <div id="..." style="..."></div>
// Script should contain the <script>...</script> block that initializes the chart in that div.
// HTML contains the complete snippet with div + script combined for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
	Width  string
	Height string
}

// EChartsCDNTag is the script tag loading the ECharts runtime, emitted once
// per report page.
const EChartsCDNTag = `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`
