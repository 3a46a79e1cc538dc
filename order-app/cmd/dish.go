package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gofood/order-app/internal/domain"
	"gofood/order-app/internal/pricing"

	"github.com/spf13/cobra"
)

type dishOptions struct {
	extras   []string
	quantity int
	favorite bool
	submit   bool
}

func (a *app) newDishCmd() *cobra.Command {
	opts := &dishOptions{}

	cmd := &cobra.Command{
		Use:   "dish <id>",
		Short: "Configure a dish, print its total and optionally submit the order",
		Example: `  order-app dish 1 --extra 10=2 --extra 11=1 --quantity 2
  order-app dish 1 --favorite
  order-app dish 1 --extra 10=1 --submit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dishID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid dish id %q", args[0])
			}
			return a.runDish(cmd, dishID, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.extras, "extra", nil, "Extra to add as <extra-id>=<quantity> (repeatable)")
	cmd.Flags().IntVar(&opts.quantity, "quantity", 1, "How many of the dish to order")
	cmd.Flags().BoolVar(&opts.favorite, "favorite", false, "Toggle the dish favorite flag")
	cmd.Flags().BoolVar(&opts.submit, "submit", false, "Submit the order once configured")
	return cmd
}

func (a *app) runDish(cmd *cobra.Command, dishID int, opts *dishOptions) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	extras, err := parseExtras(opts.extras)
	if err != nil {
		return err
	}
	if opts.quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", opts.quantity)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	session, err := a.composer(cfg).StartSession(ctx, dishID)
	if err != nil {
		return err
	}

	for _, extra := range extras {
		for i := 0; i < extra.quantity; i++ {
			if err := session.IncrementExtra(extra.id); err != nil {
				return err
			}
		}
	}
	for i := 1; i < opts.quantity; i++ {
		if err := session.IncrementQuantity(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	formatter := pricing.NewFormatter(cfg.CurrencySymbol)

	if opts.favorite {
		if err := session.ToggleFavorite(ctx); err != nil {
			return err
		}
	}

	printDraft(out, session.Draft(), session.IsFavorite(), formatter)

	if !opts.submit {
		return nil
	}

	if err := session.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Pedido confirmado!")

	intent, err := session.DismissConfirmation()
	if err != nil {
		return err
	}
	if intent.Kind == domain.IntentGoBack {
		fmt.Fprintln(out, "Back to menu.")
	}
	return nil
}

type extraRequest struct {
	id       int
	quantity int
}

func parseExtras(raw []string) ([]extraRequest, error) {
	requests := make([]extraRequest, 0, len(raw))
	for _, item := range raw {
		idPart, qtyPart, ok := strings.Cut(item, "=")
		if !ok {
			qtyPart = "1"
		}
		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			return nil, fmt.Errorf("invalid extra %q: id must be a number", item)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("invalid extra %q: quantity must be a non-negative number", item)
		}
		requests = append(requests, extraRequest{id: id, quantity: quantity})
	}
	return requests, nil
}

func printDraft(out io.Writer, draft domain.OrderDraft, favorite bool, formatter pricing.Formatter) {
	marker := ""
	if favorite {
		marker = " ★"
	}
	fmt.Fprintf(out, "%s%s\n", draft.Dish.Name, marker)
	if draft.Dish.Description != "" {
		fmt.Fprintf(out, "  %s\n", draft.Dish.Description)
	}
	fmt.Fprintf(out, "  %s\n", formatter.Format(draft.Dish.Price.Decimal))

	if len(draft.Extras) > 0 {
		fmt.Fprintln(out, "Adicionais")
		for _, extra := range draft.Extras {
			fmt.Fprintf(out, "  [%d] %-20s x%d  %s\n", extra.ID, extra.Name, extra.Quantity, formatter.Format(extra.Value.Decimal))
		}
		fmt.Fprintf(out, "  subtotal %s\n", formatter.Format(pricing.ExtrasSubtotal(draft.Extras)))
	}

	fmt.Fprintf(out, "Quantidade: %d\n", draft.BaseQuantity)
	fmt.Fprintf(out, "Total do pedido: %s\n", formatter.Format(draft.Total.Decimal))
}
