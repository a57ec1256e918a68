package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
)

var doneCmd = &cobra.Command{
	Use:   "done <task_id>",
	Short: "Mark a task as complete",
	Long:  `Mark the task with the given ID as complete and remove it from the database.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task_id must be an integer (got %q)", args[0])
	}

	c := newContainer()
	defer closeContainer(c)

	store := di.MustInvoke[*di.StoreService](c).Store

	if err := store.Done(id); err != nil {
		return err
	}

	fmt.Printf("✓ task %d completed\n", id)

	return nil
}
