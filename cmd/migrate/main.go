package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"resort/config"
	"resort/helper"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/staff/model"
	"resort/internal/domains/staff/model/dto"
	"resort/internal/domains/staff/repository"
	"resort/shared"
	"resort/shared/constant"
	"resort/shared/logger"
	"resort/shared/password"
	"resort/shared/validator"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the resort database schema",
		SilenceUsage: true,
	}

	root.AddCommand(
		migrationCommand("up", "Apply all pending migrations", helper.Up, cfg),
		migrationCommand("down", "Roll back the latest migration", helper.Down, cfg),
		migrationCommand("drop", "Roll back every migration", helper.Drop, cfg),
		migrationCommand("step-up", "Apply the next pending migration", helper.StepUp, cfg),
		forceCommand(cfg),
		seedAdminCommand(cfg),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrationCommand(use, short string, run func(*config.Config) error, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg)
		},
	}
}

func forceCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("version must be a number: %w", err)
			}

			return helper.Force(cfg, version)
		},
	}
}

func seedAdminCommand(cfg *config.Config) *cobra.Command {
	req := dto.CreateStaffRequest{Role: constant.RoleAdmin}

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.ValidateStruct(&req); err != nil {
				return fmt.Errorf("invalid admin account: %w", err)
			}

			return seedAdmin(cmd.Context(), cfg, req)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password, at least 8 characters")
	cmd.Flags().StringVar(&req.FullName, "name", "Administrator", "admin full name")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func seedAdmin(ctx context.Context, cfg *config.Config, req dto.CreateStaffRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}

	repo := repository.New(postgres.New(cfg), otel.New(cfg))

	exists, err := repo.Exist(ctx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check existing staff: %w", err)
	}

	if exists {
		log.Info().Str("email", req.Email).Msg("Admin account already exists")

		return nil
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = repo.Insert(ctx, req.ToModel(constant.ContextSystem, hashed)); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("Admin account created")

	return nil
}
