package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage provider API keys",
}

var keysAddCmd = &cobra.Command{
	Use:   "add <label> <secret>",
	Short: "Store a new API key (active immediately)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		key, err := st.Keys().Add(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("add key: %w", err)
		}
		fmt.Printf("Added key %s (%s)\n", key.ID, key.Label)
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored API keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		keys, err := st.Keys().List(context.Background())
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		if len(keys) == 0 {
			fmt.Println("No API keys stored.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-12s  %s\n", "ID", "Label", "Key", "Active")
		fmt.Println(strings.Repeat("─", 76))
		for _, k := range keys {
			active := "yes"
			if !k.IsActive {
				active = "no"
			}
			fmt.Printf("%-36s  %-16s  %-12s  %s\n", k.ID, k.Label, maskSecret(k.Secret), active)
		}
		return nil
	},
}

var keysActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Put a key back into the rotation pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setKeyActive(cmd, args[0], true)
	},
}

var keysDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Remove a key from the rotation pool without deleting it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setKeyActive(cmd, args[0], false)
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a key permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Keys().Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func setKeyActive(cmd *cobra.Command, id string, active bool) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Keys().SetActive(context.Background(), id, active); err != nil {
		return fmt.Errorf("update key: %w", err)
	}
	state := "activated"
	if !active {
		state = "deactivated"
	}
	fmt.Printf("Key %s %s\n", id, state)
	return nil
}

// maskSecret shows only the tail of a stored secret.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "..." + s[len(s)-4:]
}

func init() {
	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysActivateCmd)
	keysCmd.AddCommand(keysDeactivateCmd)
	keysCmd.AddCommand(keysDeleteCmd)
}
