package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/config"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Issue an API access token",
	Long:  "Signs a bearer token for the API with JWT_SECRET. Tokens issued with --premium unlock premium scoring and the detailed analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runToken,
}

var tokenPremium bool

func init() {
	tokenCmd.Flags().BoolVar(&tokenPremium, "premium", false, "Issue a premium token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}
	token, err := server.NewJWTService(jwtConfig).GenerateToken(args[0], tokenPremium)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"token":   token,
			"subject": args[0],
			"premium": tokenPremium,
		})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
