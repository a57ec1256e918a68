package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
	"github.com/taskvet/taskvet/internal/task"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find tasks by substring",
	Long:  `Print every task whose title or description contains query, case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(_ *cobra.Command, args []string) error {
	query := args[0]

	c := newContainer()
	defer closeContainer(c)

	store := di.MustInvoke[*di.StoreService](c).Store

	tasks, err := store.Find(query)
	if err != nil {
		return err
	}

	// An empty result prints an informational object instead of a bare list.
	var out string
	if len(tasks) == 0 {
		out, err = task.Pretty(map[string]string{
			"info":  "no matching tasks",
			"query": query,
		})
	} else {
		out, err = task.Pretty(tasks)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
