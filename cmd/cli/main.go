package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// options são as flags compartilhadas por todos os subcomandos
type options struct {
	file             string
	startDate        string
	endDate          string
	locality         string
	client           string
	seller           string
	paymentCondition string
	month            string
	thresholdA       float64
	thresholdB       float64
	limit            int
	topN             int
	output           string
	verbose          bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sales-analytics",
		Short: "Análise offline de um arquivo de vendas",
		Long: `Carrega um arquivo de vendas (CSV ou XLSX) e imprime os indicadores e a
classificação ABC do recorte filtrado, usando o mesmo motor da API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(opts.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "arquivo de vendas .csv ou .xlsx (obrigatório)")
	flags.StringVar(&opts.startDate, "start", "", "data inicial yyyy-mm-dd (padrão: primeira data do arquivo)")
	flags.StringVar(&opts.endDate, "end", "", "data final yyyy-mm-dd (padrão: última data do arquivo)")
	flags.StringVar(&opts.locality, "locality", domain.AllValues, "filtro de localidade")
	flags.StringVar(&opts.client, "client", domain.AllValues, "filtro de cliente")
	flags.StringVar(&opts.seller, "seller", domain.AllValues, "filtro de vendedor")
	flags.StringVar(&opts.paymentCondition, "payment-condition", domain.AllValues, "filtro de condição de pagamento")
	flags.StringVar(&opts.month, "month", "", "filtro de mês yyyy-mm")
	flags.Float64Var(&opts.thresholdA, "threshold-a", 80, "limite percentual acumulado da classe A")
	flags.Float64Var(&opts.thresholdB, "threshold-b", 95, "limite percentual acumulado da classe B")
	flags.IntVar(&opts.limit, "limit", 30, "quantidade de grupos classificados (0 = todos)")
	flags.IntVar(&opts.topN, "top-n", 10, "quantidade de grupos nos indicadores de top N")
	flags.StringVarP(&opts.output, "output", "o", "json", "formato de saída: json ou table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "habilita logs de depuração")
	_ = rootCmd.MarkPersistentFlagRequired("file")

	rootCmd.AddCommand(
		newReportCmd(opts),
		newKPIsCmd(opts),
		newABCCmd(opts),
	)

	return rootCmd
}

func configureLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// loadReporter carrega o arquivo e monta o serviço de relatórios sobre ele
func loadReporter(ctx context.Context, opts *options) (reporting.Reporter, *domain.DatasetInfo, error) {
	thresholds := domain.ABCThresholds{A: opts.thresholdA, B: opts.thresholdB}
	if !thresholds.IsValid() {
		return nil, nil, fmt.Errorf("limites ABC inválidos: A=%.2f B=%.2f", opts.thresholdA, opts.thresholdB)
	}

	holder := store.NewHolder()
	info, err := dataset.NewService(holder, nil).LoadFile(ctx, opts.file)
	if err != nil {
		return nil, nil, err
	}

	for _, warning := range info.Warnings {
		logrus.Warn(warning)
	}

	reporter := reporting.NewService(holder, nil, reporting.Options{
		Thresholds: thresholds,
		ABCLimit:   opts.limit,
		TopN:       opts.topN,
	})

	return reporter, info, nil
}

func (opts *options) criteria() (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		Locality:         opts.locality,
		Client:           opts.client,
		Seller:           opts.seller,
		PaymentCondition: opts.paymentCondition,
		Month:            opts.month,
	}

	start, err := utils.ParseDate(opts.startDate)
	if err != nil {
		return criteria, fmt.Errorf("--start inválido: %w", err)
	}
	if start != nil {
		criteria.DateRange.Start = *start
	}

	end, err := utils.ParseDate(opts.endDate)
	if err != nil {
		return criteria, fmt.Errorf("--end inválido: %w", err)
	}
	if end != nil {
		criteria.DateRange.End = *end
	}

	return criteria, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
