package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/weekendguide/berlin/internal/app"
	"github.com/weekendguide/berlin/internal/config"
	"github.com/weekendguide/berlin/pkg/budget"
	"github.com/weekendguide/berlin/pkg/catalog"
	"github.com/weekendguide/berlin/pkg/favorites"
	"golang.org/x/text/language"
)

const defaultConfigPath = "./config/application.yaml"

// Execute runs the guide command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "guide",
		Short:         "Berlin weekend guide with favorites and budget estimates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML configuration file")

	loadConfig := func() (config.Application, error) {
		return config.Load(configPath)
	}

	rootCmd.AddCommand(
		newServeCommand(loadConfig),
		newBudgetCommand(loadConfig),
		newCatalogCommand(loadConfig),
	)
	return rootCmd
}

func newServeCommand(loadConfig func() (config.Application, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			application, err := app.NewApplication(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run(cmd.Context())
		},
	}
}

type budgetFlags struct {
	favorites []string
	inputs    budget.Inputs
	csv       bool
}

func newBudgetCommand(loadConfig func() (config.Application, error)) *cobra.Command {
	var flags budgetFlags

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Estimate the trip cost for a list of favorites",
		Example: "  guide budget --favorite museum_0 --favorite restaurant_1 --days 2\n" +
			"  guide budget --transport 16 --csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			items, err := app.LoadCatalog(cfg.Catalog)
			if err != nil {
				return err
			}
			for _, id := range flags.favorites {
				if !items.Has(id) {
					log.Warnf("unknown favorite %s is ignored", id)
				}
			}

			calculator := budget.NewCalculator(budget.Config{
				Defaults: budget.Inputs{
					MuseumPackage:    cfg.Budget.MuseumPackage,
					FoodBudgetPerDay: cfg.Budget.FoodBudgetPerDay,
					Transport:        cfg.Budget.Transport,
					Days:             cfg.Budget.Days,
				},
				WeekendPassPrice: cfg.Budget.WeekendPassPrice,
				MealsPerDay:      cfg.Budget.MealsPerDay,
			})
			result := calculator.Compute(favorites.NewSet(flags.favorites...), items, flags.inputs)

			if flags.csv {
				out, err := budget.NewCsvRenderer().RenderBudget(result)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			return printBreakdown(cmd.OutOrStdout(), budget.NewFormatter(language.Make(cfg.Budget.Language)).Breakdown(result), result)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.favorites, "favorite", "f", nil, "favorite catalog id, repeatable (e.g. museum_0)")
	cmd.Flags().Float64Var(&flags.inputs.MuseumPackage, "museum-package", 0, "museum package price used without museum favorites")
	cmd.Flags().Float64Var(&flags.inputs.FoodBudgetPerDay, "food-per-day", 0, "food budget per day used without restaurant favorites")
	cmd.Flags().Float64Var(&flags.inputs.Transport, "transport", 0, "transport price per day, or the weekend pass price")
	cmd.Flags().Float64Var(&flags.inputs.Days, "days", 0, "trip length in days")
	cmd.Flags().BoolVar(&flags.csv, "csv", false, "print the breakdown as CSV")
	return cmd
}

func printBreakdown(w io.Writer, breakdown budget.Breakdown, result budget.Result) error {
	_, err := fmt.Fprintf(w,
		"Museums & attractions: %s\nFood: %s\nTransport: %s\nTotal: %s (%g days)\n",
		breakdown.Museum, breakdown.Food, breakdown.Transport, breakdown.Grand, result.Inputs.Days)
	return err
}

func newCatalogCommand(loadConfig func() (config.Application, error)) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog items and their ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			items, err := app.LoadCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			list := items.All()
			if category != "" {
				parsed, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				list = items.ByCategory(parsed)
			}
			for _, item := range list {
				price := "Free"
				if !item.Free {
					price = catalog.FormatCents(item.Price)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-40s %s\n", item.ID, item.Name, price); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category ("+strings.Join(categoryNames(), ", ")+")")
	return cmd
}

func categoryNames() []string {
	names := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		names = append(names, string(c))
	}
	return names
}
