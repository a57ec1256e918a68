package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
	"github.com/taskvet/taskvet/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show <count>",
	Short: "Show the most recent tasks",
	Long:  `Print the first count tasks, newest first, as formatted JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("count must be an integer (got %q)", args[0])
	}

	c := newContainer()
	defer closeContainer(c)

	store := di.MustInvoke[*di.StoreService](c).Store

	tasks, err := store.First(count)
	if err != nil {
		return err
	}

	out, err := task.Pretty(tasks)
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
