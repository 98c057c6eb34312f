package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/koncoweb/kasir-go/internal/core/domain"
)

var salePayment float64

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Record and inspect sales",
}

var saleNewCmd = &cobra.Command{
	Use:   "new [product-id:qty ...]",
	Short: "Ring up a sale",
	Long: `Records a sale of one or more cart lines, each written as
product-id:quantity. The unit price is taken from the product at the
moment of sale. Example:

  kasir sale new 3f2a...:2 9c1b...:1 --payment 50000`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSaleNew,
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sales, newest first",
	RunE:  runSaleList,
}

var saleShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a sale with its line items",
	Args:  cobra.ExactArgs(1),
	RunE:  runSaleShow,
}

func init() {
	saleNewCmd.Flags().Float64Var(&salePayment, "payment", 0, "amount handed over by the customer")
	saleNewCmd.MarkFlagRequired("payment") //nolint:errcheck

	saleCmd.AddCommand(saleNewCmd)
	saleCmd.AddCommand(saleListCmd)
	saleCmd.AddCommand(saleShowCmd)
	rootCmd.AddCommand(saleCmd)
}

func runSaleNew(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)

	// Resolve each cart line against the catalogue for the price
	// snapshot, then compute the totals the data layer will trust.
	var cart []domain.CartLine
	var total float64
	for _, arg := range args {
		id, qtyStr, ok := strings.Cut(arg, ":")
		if !ok {
			return fmt.Errorf("invalid cart line %q, want product-id:quantity", arg)
		}
		qty, err := strconv.ParseInt(qtyStr, 10, 64)
		if err != nil || qty <= 0 {
			return fmt.Errorf("invalid quantity in %q", arg)
		}

		product, err := catalogService.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no such product %s", id)
		}
		if err != nil {
			return fmt.Errorf("loading product %s: %w", id, err)
		}

		cart = append(cart, domain.CartLine{ProductID: id, Quantity: qty, Price: product.Price})
		total += product.Price * float64(qty)
	}

	if salePayment < total {
		return fmt.Errorf("payment %.2f is less than total %.2f", salePayment, total)
	}

	saleID, err := salesService.Checkout(ctx, total, salePayment, salePayment-total, cart)
	if err != nil {
		return fmt.Errorf("recording sale: %w", err)
	}

	cmd.Printf("Sale %s recorded.\n", saleID)
	cmd.Printf("  Total:   %.2f\n", total)
	cmd.Printf("  Payment: %.2f\n", salePayment)
	cmd.Printf("  Change:  %.2f\n", salePayment-total)
	return nil
}

func runSaleList(cmd *cobra.Command, _ []string) error {
	sales, err := salesService.List(cmdContext(cmd))
	if err != nil {
		return fmt.Errorf("listing sales: %w", err)
	}
	if len(sales) == 0 {
		cmd.Println("No sales.")
		return nil
	}
	for _, s := range sales {
		ts := time.Unix(s.CreatedAt, 0).Format("2006-01-02 15:04:05")
		cmd.Printf("%s  %s  total %.2f\n", s.ID, ts, s.TotalAmount)
	}
	return nil
}

func runSaleShow(cmd *cobra.Command, args []string) error {
	sale, err := salesService.Get(cmdContext(cmd), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("No such sale.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading sale: %w", err)
	}

	ts := time.Unix(sale.CreatedAt, 0).Format("2006-01-02 15:04:05")
	cmd.Printf("Sale %s at %s\n", sale.ID, ts)
	for _, item := range sale.Items {
		cmd.Printf("  %dx %-24s  @ %.2f  = %.2f\n", item.Quantity, item.ProductName, item.Price, item.Subtotal)
	}
	cmd.Printf("  Total:   %.2f\n", sale.TotalAmount)
	cmd.Printf("  Payment: %.2f\n", sale.PaymentAmount)
	cmd.Printf("  Change:  %.2f\n", sale.ChangeAmount)
	return nil
}
