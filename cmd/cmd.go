package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "tripval",
	Short: "compute flight attendant trip value",
	Long:  `this is a tool to compute the monetary value of an airline trip for a flight attendant from seniority, time away from base, credit hours, crew position and related inputs`,
}

func init() {
	RootCmd.AddCommand(calcCmd())
	RootCmd.AddCommand(serverCommand())
}
