package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <request...>",
		Short: "Draft a quotation email from a procurement request",
		Long: "Draft an English quotation email from a free-text procurement\n" +
			"request. The request can be in Portuguese; product fields are\n" +
			"extracted and the draft is written for the manufacturer's sales team.",
		Example: `  ipq quote 'EMERSON 1151 ; conexão ao processo: flange 6" ; 3 unidades'
  ipq quote "SHINING 3D EINSCAN PRO HD" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			c := newClient()
			email, err := c.GenerateEmail(context.Background(), input)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"email": email})
			}
			fmt.Println(email)
			return nil
		},
	}
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <request...>",
		Short: "Find distributor contacts for a procurement request",
		Long: "Resolve distributor contact emails for a procurement request.\n" +
			"Registered directory entries are listed before discovered contacts.",
		Example: `  ipq find "EMERSON 1151 transmissor de pressão"
  ipq find "rotork IQ3" --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			c := newClient()
			resp, err := c.FindSuppliers(context.Background(), input)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printContacts(resp)
		},
	}
}
