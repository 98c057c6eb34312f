package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

var (
	productAddPrice  float64
	productAddStock  int64
	productSetName   string
	productSetPrice  float64
	productSetStock  int64
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalogue",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductList,
}

var productAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductAdd,
}

var productShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductShow,
}

var productSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductSearch,
}

var productUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a product's name, price, or stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductUpdate,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product",
	Long:  `Deletes a product. Fails if any recorded sale references it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProductDelete,
}

var productStockCmd = &cobra.Command{
	Use:   "stock [id] [delta]",
	Short: "Adjust a product's stock by a signed amount",
	Args:  cobra.ExactArgs(2),
	RunE:  runProductStock,
}

func init() {
	productAddCmd.Flags().Float64Var(&productAddPrice, "price", 0, "unit price")
	productAddCmd.Flags().Int64Var(&productAddStock, "stock", 0, "initial stock")
	productAddCmd.MarkFlagRequired("price") //nolint:errcheck

	productUpdateCmd.Flags().StringVar(&productSetName, "name", "", "new name")
	productUpdateCmd.Flags().Float64Var(&productSetPrice, "price", 0, "new price")
	productUpdateCmd.Flags().Int64Var(&productSetStock, "stock", 0, "new stock count")

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productShowCmd)
	productCmd.AddCommand(productSearchCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productStockCmd)
	rootCmd.AddCommand(productCmd)
}

func runProductList(cmd *cobra.Command, _ []string) error {
	products, err := catalogService.List(cmdContext(cmd))
	if err != nil {
		return fmt.Errorf("listing products: %w", err)
	}
	printProducts(cmd, products)
	return nil
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])

	// The storage layer is not a validation gate; reject bad input here.
	if name == "" {
		return errors.New("product name must not be empty")
	}
	if productAddPrice <= 0 {
		return errors.New("price must be positive")
	}
	if productAddStock < 0 {
		return errors.New("initial stock must not be negative")
	}

	id, err := catalogService.Create(cmdContext(cmd), name, productAddPrice, productAddStock)
	if err != nil {
		return fmt.Errorf("adding product: %w", err)
	}
	cmd.Printf("Added product %s\n", id)
	return nil
}

func runProductShow(cmd *cobra.Command, args []string) error {
	product, err := catalogService.Get(cmdContext(cmd), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No such product.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading product: %w", err)
	}

	cmd.Printf("%s\n", product.Name)
	cmd.Printf("  ID:    %s\n", product.ID)
	cmd.Printf("  Price: %.2f\n", product.Price)
	cmd.Printf("  Stock: %d\n", product.Stock)
	return nil
}

func runProductSearch(cmd *cobra.Command, args []string) error {
	products, err := catalogService.Search(cmdContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("searching products: %w", err)
	}
	printProducts(cmd, products)
	return nil
}

func runProductUpdate(cmd *cobra.Command, args []string) error {
	var update domain.ProductUpdate
	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(productSetName)
		if name == "" {
			return errors.New("product name must not be empty")
		}
		update.Name = &name
	}
	if cmd.Flags().Changed("price") {
		if productSetPrice <= 0 {
			return errors.New("price must be positive")
		}
		update.Price = &productSetPrice
	}
	if cmd.Flags().Changed("stock") {
		update.Stock = &productSetStock
	}

	err := catalogService.Update(cmdContext(cmd), args[0], update)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No such product.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	cmd.Println("Updated.")
	return nil
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	err := catalogService.Delete(cmdContext(cmd), args[0])
	if errors.Is(err, domain.ErrProductInUse) {
		return errors.New("product has recorded sales and cannot be deleted")
	}
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No such product.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	cmd.Println("Deleted.")
	return nil
}

func runProductStock(cmd *cobra.Command, args []string) error {
	delta, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid delta %q", args[1])
	}

	err = catalogService.AdjustStock(cmdContext(cmd), args[0], delta)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No such product.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("adjusting stock: %w", err)
	}
	cmd.Println("Stock adjusted.")
	return nil
}

func printProducts(cmd *cobra.Command, products []domain.Product) {
	if len(products) == 0 {
		cmd.Println("No products.")
		return
	}
	for _, p := range products {
		cmd.Printf("%s  %-24s  %10.2f  stock %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
}
