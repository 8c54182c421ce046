package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// GatewayDuration returns a timeseries panel showing p50 and p95 completion
// gateway call latencies.
func GatewayDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Gateway Duration").
		Description("Completion gateway call duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(ipq_gateway_call_duration_seconds_bucket{job="quote-service"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(ipq_gateway_call_duration_seconds_bucket{job="quote-service"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// GatewayErrors returns a timeseries panel showing the completion gateway
// error rate.
func GatewayErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Gateway Errors").
		Description("Completion gateway error rate per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ipq:gateway_errors:rate5m`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FallbackRate returns a timeseries panel showing how often responses were
// served from the local fallback tables instead of the gateway.
func FallbackRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fallback Rate").
		Description("Responses served from local fallback tables per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ipq:fallbacks:rate5m`, "fallbacks/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
