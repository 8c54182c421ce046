package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func suppliersCmd() *cobra.Command {
	suppliersRoot := &cobra.Command{
		Use:   "suppliers",
		Short: "Manage the supplier directory",
		Long: "Manage the directory of registered suppliers. Each record maps a\n" +
			"manufacturer to the distributor contact emails used when resolving\n" +
			"quotation recipients.",
	}

	suppliersRoot.AddCommand(
		suppliersListCmd(),
		suppliersAddCmd(),
		suppliersAddEmailCmd(),
		suppliersRemoveEmailCmd(),
		suppliersDeleteCmd(),
	)

	return suppliersRoot
}

func suppliersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered suppliers",
		Example: `  ipq suppliers list
  ipq suppliers list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			suppliers, err := c.ListSuppliers(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(suppliers)
			}
			if len(suppliers) == 0 {
				fmt.Println("No suppliers registered.")
				return nil
			}
			return printSupplierTable(suppliers)
		},
	}
}

func suppliersAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <manufacturer> <email>",
		Short: "Register an email under a manufacturer",
		Long: "Register a contact email under a manufacturer. Manufacturers are\n" +
			"matched case-insensitively, so adding to an existing one appends\n" +
			"the email instead of creating a duplicate record.",
		Example: `  ipq suppliers add EMERSON sales@emerson.com
  ipq suppliers add "SHINING 3D" emea@shining3d.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			sup, err := c.CreateSupplier(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(sup)
			}
			fmt.Printf("Supplier %s (%s) now has %d email(s).\n",
				sup.Manufacturer, sup.ID, len(sup.Emails))
			return nil
		},
	}
}

func suppliersAddEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add-email <id> <email>",
		Short:   "Append an email to an existing supplier",
		Example: `  ipq suppliers add-email abc123 quotes@emerson.com`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			sup, err := c.AddSupplierEmail(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(sup)
			}
			return printSupplierDetail(sup)
		},
	}
}

func suppliersRemoveEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-email <id> <email>",
		Short: "Remove an email from a supplier",
		Long: "Remove a contact email from a supplier. Removing the last email\n" +
			"deletes the supplier record entirely.",
		Example: `  ipq suppliers remove-email abc123 quotes@emerson.com`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.RemoveSupplierEmail(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Email %s removed from supplier %s.\n", args[1], args[0])
			return nil
		},
	}
}

func suppliersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a supplier",
		Example: `  ipq suppliers delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteSupplier(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Supplier %s deleted.\n", args[0])
			return nil
		},
	}
}
