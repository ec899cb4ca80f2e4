package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"repair_tracker/internal/adapter/recordstore"
	"repair_tracker/internal/config"
	"repair_tracker/internal/infrastructure/export"
	"repair_tracker/internal/infrastructure/logging"
	"repair_tracker/internal/usecase"
	"repair_tracker/internal/usecase/interfaces"
	"repair_tracker/internal/usecase/search"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitNotFound    = 2
	exitBadInput    = 3
	exitRecordStore = 4
	exitWrite       = 5
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	apiURL  string
	timeout time.Duration
	verbose bool
}

type exportFlags struct {
	format string
	query  string
	out    string
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitBadInput)
	}

	root := newRootCmd(cfg, os.Stdout)
	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, stdout io.Writer) *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:           "ordenes",
		Short:         "Repair order tools for the shop's Record Store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.apiURL, "api-url", cfg.APIURL, "Record Store base URL")
	pf.DurationVar(&g.timeout, "timeout", cfg.RecordStoreTimeout, "Per-request timeout (0 = none)")
	pf.BoolVar(&g.verbose, "verbose", false, "Log requests to stderr")

	var ef exportFlags
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the order list as PDF or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(g)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), client.Orders(), ef, stdout)
		},
	}
	f := exportCmd.Flags()
	f.StringVar(&ef.format, "format", export.FormatPDF, "Output format: pdf or xlsx")
	f.StringVar(&ef.query, "query", "", "Only export orders matching this text")
	f.StringVar(&ef.out, "out", "", "Write to this file instead of the default file name")

	statusCmd := &cobra.Command{
		Use:   "status <orderNumber>",
		Short: "Show the repair status of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(g)
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), client.Orders(), args[0], stdout)
		},
	}

	var apptQuery string
	apptCmd := &cobra.Command{
		Use:   "appointments",
		Short: "List booked appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(g)
			if err != nil {
				return err
			}
			return runAppointments(cmd.Context(), client.Appointments(), apptQuery, stdout)
		},
	}
	apptCmd.Flags().StringVar(&apptQuery, "query", "", "Only list appointments matching this text")

	root.AddCommand(exportCmd, statusCmd, apptCmd)
	return root
}

func newClient(g globalFlags) (*recordstore.Client, error) {
	logger := zap.NewNop()
	if g.verbose {
		logger = logging.Must("debug", "local")
	}
	client, err := recordstore.NewClient(g.apiURL, g.timeout, logger)
	if err != nil {
		return nil, codeError(exitBadInput, "invalid --api-url: %s", err)
	}
	return client, nil
}

func runExport(ctx context.Context, store interfaces.IOrderStore, flags exportFlags, stdout io.Writer) error {
	exporter, err := export.NewExporter(flags.format)
	if err != nil {
		return codeError(exitBadInput, "%s", err)
	}

	orders, err := store.List(ctx)
	if err != nil {
		return codeError(exitRecordStore, "%s", usecase.UserMessage(usecase.OpRefreshOrders, err))
	}
	orders = search.Orders(orders, flags.query)

	path := flags.out
	if path == "" {
		path = exporter.FileName()
	}
	file, err := os.Create(path)
	if err != nil {
		return codeError(exitWrite, "creating %s: %s", path, err)
	}
	if err := exporter.Export(file, orders); err != nil {
		_ = file.Close()
		return codeError(exitWrite, "writing %s: %s", path, err)
	}
	if err := file.Close(); err != nil {
		return codeError(exitWrite, "writing %s: %s", path, err)
	}

	fmt.Fprintf(stdout, "%d órdenes exportadas a %s\n", len(orders), path)
	return nil
}

func runStatus(ctx context.Context, store interfaces.IOrderStore, orderNumber string, stdout io.Writer) error {
	o, err := usecase.NewStatusLookupUseCase(store, zap.NewNop()).Lookup(ctx, orderNumber)
	if err != nil {
		msg := usecase.UserMessage(usecase.OpStatusLookup, err)
		if msg == usecase.MsgOrderNotFound {
			return codeError(exitNotFound, "%s", msg)
		}
		return codeError(exitRecordStore, "%s", msg)
	}

	fmt.Fprintf(stdout, "Orden %s\n", o.OrderNumber)
	fmt.Fprintf(stdout, "  Equipo: %s %s\n", o.Brand, o.Model)
	fmt.Fprintf(stdout, "  Reparación: %s\n", o.RepairType)
	fmt.Fprintf(stdout, "  Estado: %s\n", o.Status)
	return nil
}

func runAppointments(ctx context.Context, store interfaces.IAppointmentStore, query string, stdout io.Writer) error {
	list, err := store.List(ctx)
	if err != nil {
		return codeError(exitRecordStore, "%s", usecase.UserMessage(usecase.OpRefreshAppointments, err))
	}
	list = search.Appointments(list, query)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FECHA\tHORA\tCLIENTE\tTELÉFONO\tSERVICIO\tESTADO")
	for _, a := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.AppointmentDate, a.AppointmentTime, a.CustomerName, a.CustomerPhone, a.Service, a.Status)
	}
	return tw.Flush()
}
