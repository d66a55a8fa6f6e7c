package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itssocoldhere/glowbio/internal/bot"
)

func DispatchCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "dispatch --as <id> <message>",
		Short: "Run a chat command against the store as if it came from Discord",
		Example: `  do dispatch --as 1098101847014777002 ",insta https://instagram.com/me"
  do dispatch --as 1098101847014777002 ,rosa`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if as == "" {
				return fmt.Errorf("--as is required")
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			raw := strings.Join(args, " ")
			reply, err := a.Dispatcher.HandleMessage(cmd.Context(), bot.Sender{ID: as}, a.Cfg.CommandPrefix, raw)
			if err != nil {
				return fmt.Errorf("dispatch failed: %w", err)
			}

			if reply == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "(no reply)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "Discord user id the command is sent as")
	return cmd
}
