package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/newtonbotics/labstore/app/repositories"
	"github.com/newtonbotics/labstore/app/services"
	"github.com/newtonbotics/labstore/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo products",
	Long: "Inserts the built-in demo products into the product collection. " +
		"Does nothing when any product already exists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// Seeding writes; unlike serve there is no degraded mode here.
		st, err := connectStore()
		if err != nil {
			return fmt.Errorf("connect store: %w", err)
		}

		svc := services.NewProductService(repositories.NewProductRepository(st))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		inserted, alreadySeeded, err := svc.Seed(ctx)
		if err != nil {
			return err
		}

		if alreadySeeded {
			fmt.Println("Products already exist, nothing inserted.")
			return nil
		}

		fmt.Printf("Inserted %d demo products.\n", inserted)
		return nil
	},
}
