package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// quote-service operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ipq-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ipq-alerts",
					Rules: []Rule{
						{
							Alert: "IpqDown",
							Expr:  `absent(up{job="quote-service"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Quote service is down",
								"description": "The quote-service job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "IpqReadinessDown",
							Expr:  `ipq_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Quote service readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes. The storage backend is likely unreachable.",
							},
						},
						{
							Alert: "IpqHighErrorRate",
							Expr:  `ipq:http_errors:rate5m / ipq:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on quote service",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "IpqGatewayErrors",
							Expr:  `ipq:gateway_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Completion gateway error rate is elevated",
								"description": "Gateway calls are failing at more than 0.1/s for the last 5 minutes. Check the OpenAI endpoint and API key.",
							},
						},
						{
							Alert: "IpqFallbackSurge",
							Expr:  `ipq:fallbacks:rate5m > 0.1`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Quote service is serving fallback responses",
								"description": "Responses have been composed from the local fallback tables instead of the completion gateway for more than 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
