package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ipq-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ipq-recording",
					Rules: []Rule{
						{
							Record: "ipq:http_requests:rate5m",
							Expr:   `sum(rate(ipq_http_requests_total[5m]))`,
						},
						{
							Record: "ipq:http_errors:rate5m",
							Expr:   `sum(rate(ipq_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ipq:gateway_errors:rate5m",
							Expr:   `sum(rate(ipq_gateway_errors_total[5m]))`,
						},
						{
							Record: "ipq:fallbacks:rate5m",
							Expr:   `sum(rate(ipq_fallback_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
