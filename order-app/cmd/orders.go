package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			orders, err := a.history(cfg).ListOrders(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(orders) == 0 {
				fmt.Fprintln(out, "Nenhum pedido ainda.")
				return nil
			}
			fmt.Fprintln(out, "Meus pedidos")
			for _, order := range orders {
				fmt.Fprintf(out, "  #%-4d %-24s %s\n", order.ID, order.Name, order.FormattedPrice)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one past order with its extras",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			history := a.history(cfg)
			intent := history.OpenOrderDetails(orderID)
			order, err := history.LoadOrder(ctx, intent.OrderID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pedido #%d: %s\n", order.ID, order.Name)
			if order.Description != "" {
				fmt.Fprintf(out, "  %s\n", order.Description)
			}
			if len(order.Extras) > 0 {
				fmt.Fprintln(out, "Adicionais")
				for _, extra := range order.Extras {
					fmt.Fprintf(out, "  %-20s x%d\n", extra.Name, extra.Quantity)
				}
			}
			fmt.Fprintf(out, "Total do pedido: %s\n", order.FormattedPrice)
			return nil
		},
	})

	return cmd
}
