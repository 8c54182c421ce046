// Package validate checks generated dashboards for PromQL syntax errors
// and references to metrics the service does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	promds "github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail the build; warnings are
// informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus query target in the dashboard:
// each expression must parse as PromQL and reference only known metrics.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	for _, outer := range dash.Panels {
		if outer.RowPanel == nil {
			continue
		}
		for i := range outer.RowPanel.Panels {
			panel := &outer.RowPanel.Panels[i]

			title := "untitled"
			if panel.Title != nil {
				title = *panel.Title
			}

			for _, target := range panel.Targets {
				expr := targetExpr(target)
				if expr == "" {
					result.warnf("panel %q has a non-Prometheus or empty target", title)
					continue
				}
				Expr(expr, title, known, &result)
			}
		}
	}

	return result
}

// Expr validates a single PromQL expression against the known metric set,
// appending findings to result. The origin string names the panel or rule
// the expression came from.
func Expr(expr, origin string, known map[string]bool, result *Result) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		result.errorf("panel %q: invalid PromQL %q: %v", origin, expr, err)
		return
	}

	//nolint:errcheck // the walk function never returns an error
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if vs.Name == "" {
			result.warnf("panel %q: selector without a metric name in %q", origin, expr)
			return nil
		}
		if !known[vs.Name] && !knownSuffix(vs.Name, known) {
			result.errorf("panel %q: unknown metric %q", origin, vs.Name)
		}
		return nil
	})
}

// targetExpr extracts the PromQL expression from a built query target.
func targetExpr(target any) string {
	switch q := target.(type) {
	case promds.Dataquery:
		return q.Expr
	case *promds.Dataquery:
		return q.Expr
	default:
		return ""
	}
}

// knownSuffix accepts histogram series (_bucket, _sum, _count) whose base
// metric is known.
func knownSuffix(name string, known map[string]bool) bool {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			if known[name[:len(name)-len(suffix)]] {
				return true
			}
		}
	}
	return false
}
