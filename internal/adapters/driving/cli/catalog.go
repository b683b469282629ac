package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

var (
	catalogStyle string
	catalogJSON  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product catalog",
	Long: `Browse the product catalog without starting a styling session.

Products are grouped into style buckets: formal, casual and work.
Without --style, the full catalog is shown.`,
	RunE: runCatalogList,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single product",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogStyle, "style", "", "style bucket: formal, casual or work")
	catalogCmd.PersistentFlags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogStore == nil {
		return errors.New("catalog not configured")
	}

	var products []domain.Product
	switch catalogStyle {
	case "":
		products = catalogStore.All()
	case "formal":
		products = catalogStore.Bucket(domain.IntentFormal)
	case "casual":
		products = catalogStore.Bucket(domain.IntentCasual)
	case "work":
		products = catalogStore.Bucket(domain.IntentWork)
	default:
		return fmt.Errorf("unknown style %q: use formal, casual or work", catalogStyle)
	}

	if catalogJSON {
		data, err := json.MarshalIndent(products, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal products: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(products) == 0 {
		cmd.Println("No products found.")
		return nil
	}

	for i := range products {
		p := &products[i]
		cmd.Printf("%-6s %-34s %-12s %-12s $%.0f\n", p.ID, p.Name, p.Brand, p.Category, p.Price)
	}
	cmd.Printf("\n%d products\n", len(products))
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	if catalogStore == nil {
		return errors.New("catalog not configured")
	}

	product, err := catalogStore.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	if catalogJSON {
		data, err := json.MarshalIndent(product, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal product: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n", product.Name)
	cmd.Printf("  ID:          %s\n", product.ID)
	cmd.Printf("  Brand:       %s\n", product.Brand)
	cmd.Printf("  Category:    %s\n", product.Category)
	cmd.Printf("  Price:       $%.2f\n", product.Price)
	cmd.Printf("  Colours:     %s\n", strings.Join(product.Colors, ", "))
	cmd.Printf("  Sizes:       %s\n", strings.Join(product.Sizes, ", "))
	if product.Description != "" {
		cmd.Printf("  Description: %s\n", product.Description)
	}
	if len(product.Retailers) > 0 {
		names := make([]string, 0, len(product.Retailers))
		for _, r := range product.Retailers {
			names = append(names, r.Name)
		}
		cmd.Printf("  Retailers:   %s\n", strings.Join(names, ", "))
	}
	return nil
}
