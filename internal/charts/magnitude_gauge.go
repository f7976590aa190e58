package charts

import (
	"encoding/json"
	"fmt"

	"impactcast/internal/models"
)

// GenerateMagnitudeGaugeSnippet builds an ECharts gauge for the seismic
// magnitude equivalent of an impact.
func (cg *ChartGenerator) GenerateMagnitudeGaugeSnippet(results *models.ImpactResult) (ChartSnippet, error) {
	if results == nil {
		return ChartSnippet{}, fmt.Errorf("results cannot be nil")
	}

	id := "chart-magnitude-gauge"
	mw := results.SeismicMwEquivalent

	var statusText string
	switch {
	case mw < 4:
		statusText = "Minor"
	case mw < 6:
		statusText = "Moderate"
	case mw < 7:
		statusText = "Strong"
	case mw < 8:
		statusText = "Major"
	default:
		statusText = "Great"
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"formatter": "{a} <br/>{b} : {c}",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":        "Seismic magnitude",
				"type":        "gauge",
				"min":         0,
				"max":         10,
				"splitNumber": 10,
				"radius":      "80%",
				"axisLine": map[string]interface{}{
					"lineStyle": map[string]interface{}{
						"width": 20,
						"color": [][]interface{}{
							{0.4, "#28a745"}, // 0-4: Minor
							{0.6, "#ffc107"}, // 4-6: Moderate
							{0.7, "#fd7e14"}, // 6-7: Strong
							{0.8, "#dc3545"}, // 7-8: Major
							{1.0, "#6f42c1"}, // 8-10: Great
						},
					},
				},
				"pointer": map[string]interface{}{
					"itemStyle": map[string]interface{}{
						"color": "auto",
					},
				},
				"axisTick": map[string]interface{}{
					"distance": -20,
					"length":   8,
					"lineStyle": map[string]interface{}{
						"color": "#fff",
						"width": 2,
					},
				},
				"splitLine": map[string]interface{}{
					"distance": -20,
					"length":   20,
					"lineStyle": map[string]interface{}{
						"color": "#fff",
						"width": 3,
					},
				},
				"axisLabel": map[string]interface{}{
					"color":    "inherit",
					"fontSize": 14,
					"distance": 35,
				},
				"detail": map[string]interface{}{
					"valueAnimation": true,
					"formatter":      fmt.Sprintf("%.2f\n%s", mw, statusText),
					"color":          "inherit",
					"fontSize":       14,
					"fontWeight":     "bold",
					"offsetCenter":   []interface{}{0, "60%"},
				},
				"data": []interface{}{
					map[string]interface{}{
						"value": mw,
						"name":  "Mw equivalent",
					},
				},
			},
		},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:250px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf(`<div class="gauge-item">
	<h4>Seismic Magnitude Equivalent</h4>
	%s
</div>
%s`, div, script)

	return ChartSnippet{
		ID:     id,
		Title:  "Seismic Magnitude Gauge",
		Div:    div,
		Script: script,
		HTML:   completeHTML,
		Width:  "100%",
		Height: "250px",
	}, nil
}
