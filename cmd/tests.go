package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Manage practice tests",
}

var testsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored practice tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tests, err := st.Tests().List(context.Background())
		if err != nil {
			return fmt.Errorf("list tests: %w", err)
		}
		if len(tests) == 0 {
			fmt.Println("No practice tests stored. Create one with `graceful generate`.")
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-10s  %-10s  %s\n", "ID", "Title", "Duration", "Difficulty", "Questions")
		fmt.Println(strings.Repeat("─", 96))
		for _, t := range tests {
			title := t.Title
			if len(title) > 28 {
				title = title[:28]
			}
			fmt.Printf("%-36s  %-28s  %-10s  %-10s  %d\n",
				t.ID, title, t.Duration, t.Difficulty, len(t.Questions))
		}
		return nil
	},
}

var testsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a test's questions with answers and rationales",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		test, err := st.Tests().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get test: %w", err)
		}
		if test == nil {
			return fmt.Errorf("test %s not found", args[0])
		}

		fmt.Printf("%s (%s, %s, %d questions)\n", test.Title, test.Difficulty, test.Duration, len(test.Questions))
		for i, q := range test.Questions {
			fmt.Printf("\n%d. %s\n", i+1, q.Prompt)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectIndex {
					marker = "*"
				}
				fmt.Printf("   %s %c) %s\n", marker, 'a'+rune(j), opt)
			}
			if q.Explanation != "" {
				fmt.Printf("   Rationale: %s\n", q.Explanation)
			}
		}
		return nil
	},
}

var testsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a practice test",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Tests().Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("delete test: %w", err)
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	testsCmd.AddCommand(testsListCmd)
	testsCmd.AddCommand(testsShowCmd)
	testsCmd.AddCommand(testsDeleteCmd)
}
