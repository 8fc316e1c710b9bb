package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"househunt-service/internal"
	"househunt-service/internal/configs"
	"househunt-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	loadConfig := func() (*configs.AppConfig, error) {
		if envFile != "" {
			return configs.LoadConfig(envFile)
		}
		return configs.LoadConfig()
	}

	serve := func(cmd *cobra.Command, args []string) error {
		appConfig, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading application configuration: %w", err)
		}
		application, err := internal.NewApp(appConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return application.Run()
	}

	rootCmd := &cobra.Command{
		Use:           "househunt-service",
		Short:         "Rental listings and inquiries API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default: ./.env if present)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  serve,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded SQL migrations to DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}
			applied, err := internal.Migrate(cmd.Context(), appConfig)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s): %v\n", len(applied), applied)
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert demo profiles and listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}
			created, err := internal.SeedDemoData(cmd.Context(), appConfig)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d demo listing(s)\n", created)
			return nil
		},
	})

	var (
		userID string
		role   string
		email  string
		ttl    time.Duration
	)
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token signed with JWT_SIGNING_KEY",
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			token, err := internal.IssueToken(cmd.Context(), appConfig, domain.Identity{
				UserID: id,
				Email:  email,
				Role:   domain.Role(role),
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().StringVar(&userID, "user", "", "user id (uuid)")
	tokenCmd.Flags().StringVar(&role, "role", string(domain.RoleRenter), "renter, owner or admin")
	tokenCmd.Flags().StringVar(&email, "email", "", "email claim")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("househunt-service: %v", err)
		os.Exit(1)
	}
}
