package main

import (
	"fmt"
	"os"

	"fjacquet/bank-ledger/cmd/categories"
	"fjacquet/bank-ledger/cmd/correct"
	"fjacquet/bank-ledger/cmd/importcmd"
	"fjacquet/bank-ledger/cmd/list"
	reportcmd "fjacquet/bank-ledger/cmd/report"
	"fjacquet/bank-ledger/cmd/root"
)

func init() {
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(correct.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(reportcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
