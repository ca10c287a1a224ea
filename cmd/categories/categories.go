// Package categories implements the "categories" command group for
// inspecting and extending the category rule set.
package categories

import (
	"fmt"

	"fjacquet/bank-ledger/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd is the categories command group
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage spending categories and their keywords",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in their stored order",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}
		for _, name := range sess.CategoryNames() {
			fmt.Println(name)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new empty category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}
		if !sess.AddCategory(args[0]) {
			return fmt.Errorf("category %q not added (empty or already exists)", args[0])
		}
		fmt.Printf("Added category %q\n", args[0])
		return nil
	},
}

var addKeywordCmd = &cobra.Command{
	Use:   "add-keyword <category> <keyword>",
	Short: "Register a Details keyword under a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := root.NewSession()
		if err != nil {
			return err
		}
		if !sess.AddKeyword(args[0], args[1]) {
			return fmt.Errorf("keyword %q not added to %q (empty, duplicate or unknown category)", args[1], args[0])
		}
		fmt.Printf("Added keyword %q to %q\n", args[1], args[0])
		return nil
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(addKeywordCmd)
}
