// Package cli provides the Cobra-based sweetctl admin tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sweet-shop/backend/internal/models"
	"github.com/sweet-shop/backend/internal/repository"
	"github.com/sweet-shop/backend/internal/service"
	"github.com/sweet-shop/backend/pkg/logger"
)

var (
	rootCmd = &cobra.Command{
		Use:   "sweetctl",
		Short: "Manage the sweet shop catalog",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store
			if sweetStore != nil {
				sweets = service.NewSweetService(sweetStore)
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			slog.SetDefault(logger.New(viper.GetString("log-level")))

			var err error
			sweetStore, err = repository.NewStore(
				viper.GetString("store"),
				viper.GetString("redis-url"),
				viper.GetString("key-prefix"),
			)
			if err != nil {
				return err
			}
			sweets = service.NewSweetService(sweetStore)
			return nil
		},
	}

	sweetStore repository.SweetRepository
	sweets     *service.SweetService
)

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("store", "redis", "store backend: memory|redis")
	rootCmd.PersistentFlags().String("redis-url", "redis://localhost:6379/0", "redis connection URL")
	rootCmd.PersistentFlags().String("key-prefix", "sweetshop", "redis key prefix")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("redis-url", rootCmd.PersistentFlags().Lookup("redis-url"))
	viper.BindPFlag("key-prefix", rootCmd.PersistentFlags().Lookup("key-prefix"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("SWEETSHOP")
	viper.AutomaticEnv()

	// add
	var name, category string
	var price float64
	var quantity int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a sweet to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateSweetRequest{Name: name, Category: category}
			if cmd.Flags().Changed("price") {
				req.Price = &price
			}
			if cmd.Flags().Changed("quantity") {
				req.Quantity = &quantity
			}
			sweet, err := sweets.Create(context.Background(), req)
			if err != nil {
				return err
			}
			slog.Info("sweet created", "id", sweet.ID, "name", sweet.Name)
			return printJSON(sweet)
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().StringVar(&category, "category", "", "category")
	addCmd.Flags().Float64Var(&price, "price", 0, "price")
	addCmd.Flags().IntVar(&quantity, "quantity", 0, "initial stock")
	rootCmd.AddCommand(addCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a sweet by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sweet, err := sweets.GetByID(context.Background(), args[0])
			if err != nil {
				if models.IsNotFound(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			return printJSON(sweet)
		},
	}
	rootCmd.AddCommand(getCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sweets.GetAll(context.Background())
			if err != nil {
				return err
			}
			if lOutput == "json" {
				return printJSON(out)
			}
			for _, s := range out {
				fmt.Printf("%s | %s | %s | %.2f | %d | %s\n",
					s.ID, s.Name, s.Category, s.Price, s.Quantity, s.StockStatus())
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// search
	var sName, sCategory, sInStock string
	var sMin, sMax float64
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := models.SearchCriteria{Name: sName, Category: sCategory}
			if cmd.Flags().Changed("min-price") {
				criteria.MinPrice = &sMin
			}
			if cmd.Flags().Changed("max-price") {
				criteria.MaxPrice = &sMax
			}
			switch strings.ToLower(sInStock) {
			case "true":
				t := true
				criteria.InStock = &t
			case "false":
				f := false
				criteria.InStock = &f
			}
			out, err := sweets.Search(context.Background(), criteria)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
	searchCmd.Flags().StringVar(&sName, "name", "", "name substring")
	searchCmd.Flags().StringVar(&sCategory, "category", "", "category")
	searchCmd.Flags().Float64Var(&sMin, "min-price", 0, "minimum price")
	searchCmd.Flags().Float64Var(&sMax, "max-price", 0, "maximum price")
	searchCmd.Flags().StringVar(&sInStock, "in-stock", "", "true|false")
	rootCmd.AddCommand(searchCmd)

	// update
	var uName, uCategory string
	var uPrice float64
	var uQuantity int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a sweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateSweetRequest{Name: uName, Category: uCategory}
			if cmd.Flags().Changed("price") {
				req.Price = &uPrice
			}
			if cmd.Flags().Changed("quantity") {
				req.Quantity = &uQuantity
			}
			sweet, err := sweets.Update(context.Background(), args[0], req)
			if err != nil {
				return err
			}
			slog.Info("sweet updated", "id", sweet.ID)
			return printJSON(sweet)
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().StringVar(&uCategory, "category", "", "category")
	updateCmd.Flags().Float64Var(&uPrice, "price", 0, "price")
	updateCmd.Flags().IntVar(&uQuantity, "quantity", 0, "stock")
	rootCmd.AddCommand(updateCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sweet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := sweets.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// purchase
	var pQuantity int
	purchaseCmd := &cobra.Command{
		Use:   "purchase <id>",
		Short: "Take stock out for a sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := sweets.Purchase(context.Background(), args[0], pQuantity)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	purchaseCmd.Flags().IntVar(&pQuantity, "quantity", 1, "units to purchase")
	rootCmd.AddCommand(purchaseCmd)

	// restock
	var rQuantity int
	restockCmd := &cobra.Command{
		Use:   "restock <id>",
		Short: "Add stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := sweets.Restock(context.Background(), args[0], rQuantity)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	restockCmd.Flags().IntVar(&rQuantity, "quantity", 0, "units to add")
	rootCmd.AddCommand(restockCmd)

	// seed
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.Seed(context.Background(), sweetStore); err != nil {
				return err
			}
			fmt.Println("seeded")
			return nil
		},
	}
	rootCmd.AddCommand(seedCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
