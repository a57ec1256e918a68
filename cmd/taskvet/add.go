package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
)

var addCmd = &cobra.Command{
	Use:   "add <title> <description>",
	Short: "Add a new task",
	Long:  `Add a new task to the database with the next sequential ID.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	c := newContainer()
	defer closeContainer(c)

	store := di.MustInvoke[*di.StoreService](c).Store

	t, err := store.Add(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("✓ task %d added\n", t.ID)

	return nil
}
