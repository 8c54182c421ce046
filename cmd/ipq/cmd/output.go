package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	apiclient "github.com/ipartes/quote-service/internal/api/client"
	domain "github.com/ipartes/quote-service/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSupplierTable(suppliers []domain.Supplier) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tMANUFACTURER\tEMAILS\n")
	for i := range suppliers {
		tw.writef("%s\t%s\t%s\n",
			suppliers[i].ID,
			suppliers[i].Manufacturer,
			truncate(strings.Join(suppliers[i].Emails, ", "), 60),
		)
	}
	return tw.finish()
}

func printSupplierDetail(s *domain.Supplier) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Manufacturer:\t%s\n", s.Manufacturer)
	for _, email := range s.Emails {
		tw.writef("Email:\t%s\n", email)
	}
	tw.writef("Updated:\t%s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printContacts(resp *apiclient.FindSuppliersResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("EMAIL\tSOURCE\n")
	for _, email := range resp.Suppliers {
		source := "discovered"
		if slices.Contains(resp.RegisteredSuppliers, email) {
			source = "registered"
		}
		tw.writef("%s\t%s\n", email, source)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
