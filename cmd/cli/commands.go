package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// report reúne a saída do comando report
type report struct {
	Dataset   *domain.DatasetInfo     `json:"dataset"`
	Dashboard *domain.DashboardReport `json:"dashboard"`
	ABC       *domain.ABCReport       `json:"abc"`
}

func newReportCmd(opts *options) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Imprime os indicadores e a classificação ABC",
		Example: `  sales-analytics report --file ventas.xlsx --key client --limit 30
  sales-analytics report -f ventas.csv --seller "ANA PEREZ" --start 2024-01-01 --end 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			aggregationKey, err := analytics.ParseAggregationKey(key)
			if err != nil {
				return err
			}
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}

			reporter, info, err := loadReporter(cmd.Context(), opts)
			if err != nil {
				return err
			}

			dashboard, err := reporter.Dashboard(criteria)
			if err != nil {
				return err
			}
			abc, err := reporter.ABC(criteria, aggregationKey, &opts.limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == "table" {
				printKPIs(out, dashboard)
				fmt.Fprintln(out)
				printABC(out, abc)
				return nil
			}

			fmt.Fprintln(out, utils.PrettyJson(report{Dataset: info, Dashboard: dashboard, ABC: abc}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", string(domain.KeyClient), "chave da classificação ABC")
	return cmd
}

func newKPIsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis",
		Short: "Imprime os indicadores do recorte filtrado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}

			reporter, _, err := loadReporter(cmd.Context(), opts)
			if err != nil {
				return err
			}

			dashboard, err := reporter.Dashboard(criteria)
			if err != nil {
				return err
			}

			if opts.output == "table" {
				printKPIs(cmd.OutOrStdout(), dashboard)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(dashboard))
			return nil
		},
	}
}

func newABCCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "abc [key]",
		Short: "Imprime a classificação ABC de uma chave (client, seller, product...)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}

			reporter, _, err := loadReporter(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all {
				multi, err := reporter.ABCAll(cmd.Context(), criteria, &opts.limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, utils.PrettyJson(multi))
				return nil
			}

			key := string(domain.KeyClient)
			if len(args) == 1 {
				key = args[0]
			}
			aggregationKey, err := analytics.ParseAggregationKey(key)
			if err != nil {
				return err
			}

			abc, err := reporter.ABC(criteria, aggregationKey, &opts.limit)
			if err != nil {
				return err
			}

			if opts.output == "table" {
				printABC(out, abc)
				return nil
			}
			fmt.Fprintln(out, utils.PrettyJson(abc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "classifica clientes, produtos e vendedores em paralelo")
	return cmd
}

func printKPIs(out io.Writer, dashboard *domain.DashboardReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	kpis := dashboard.KPIs
	fmt.Fprintf(w, "Período\t%s a %s\n", dashboard.Filters.DateRange.Start.Format("02/01/2006"), dashboard.Filters.DateRange.End.Format("02/01/2006"))
	fmt.Fprintf(w, "Vendedores\t%d\n", kpis.Sellers)
	fmt.Fprintf(w, "Pedidos\t%d\n", kpis.Orders)
	fmt.Fprintf(w, "Clientes\t%d\n", kpis.Clients)
	fmt.Fprintf(w, "Produtos\t%d\n", kpis.Products)
	fmt.Fprintf(w, "Quantidade total\t%.2f\n", kpis.TotalQuantity)
	fmt.Fprintf(w, "Valor total\t%.2f\n", kpis.TotalAmount)
	fmt.Fprintf(w, "Média por cliente\t%.2f\n", kpis.AverageAmountPerClient)
	fmt.Fprintf(w, "Ticket médio\t%.2f\n", kpis.AverageTicket)
	fmt.Fprintf(w, "Top clientes\t%.2f\n", dashboard.TopClientsShare)
	fmt.Fprintf(w, "Top vendedores\t%.2f\n", dashboard.TopSellersShare)
}

func printABC(out io.Writer, abc *domain.ABCReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	defer w.Flush()

	fmt.Fprintln(w, "#\tChave\tValor\t% acumulado\tClasse\t")
	for _, row := range abc.Rows {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%s\t\n",
			row.Rank, row.Key, row.Amount, utils.RoundWithTwoDecimalPlace(row.CumulativePercent), row.Class)
	}
}
