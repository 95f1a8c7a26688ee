package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"drugdash/internal/auth"
	"drugdash/internal/config"
	"drugdash/internal/container"
	"drugdash/internal/dashboard"
	"drugdash/internal/export"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// filterFlags mirror the dashboard filter form
type filterFlags struct {
	dataFile  string
	minAge    int
	maxAge    int
	gender    string
	condition string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dataFile, "data", config.DefaultDataFile, "Path to the drug effectiveness CSV or XLSX file")
	cmd.Flags().IntVar(&f.minAge, "min-age", -1, "Lower age bound (default: dataset minimum)")
	cmd.Flags().IntVar(&f.maxAge, "max-age", -1, "Upper age bound (default: dataset maximum)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender to select (default: first in dataset)")
	cmd.Flags().StringVar(&f.condition, "condition", "", "Condition to select (default: first in dataset)")
}

func (f *filterFlags) values() url.Values {
	v := url.Values{}
	if f.minAge >= 0 {
		v.Set("min_age", strconv.Itoa(f.minAge))
	}
	if f.maxAge >= 0 {
		v.Set("max_age", strconv.Itoa(f.maxAge))
	}
	if f.gender != "" {
		v.Set("gender", f.gender)
	}
	if f.condition != "" {
		v.Set("condition", f.condition)
	}
	return v
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "drugdash-cli",
		Short: "Drug effectiveness analysis from the command line",
	}

	rootCmd.AddCommand(
		newSummaryCmd(),
		newExportCmd(),
		newHashPasswordCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open bootstraps an in-memory store over the data file
func open(ctx context.Context, dataFile, credentialsFile string) (*container.Container, error) {
	cfg := &config.Config{
		Data:  config.DataConfig{File: dataFile, CredentialsFile: credentialsFile},
		Store: config.StoreConfig{Driver: "sqlite3", URL: ":memory:"},
		Auth:  config.AuthConfig{SessionCookie: "cli", BcryptCost: bcrypt.MinCost},
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	c, err := container.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.Open(ctx); err != nil {
		return nil, err
	}
	if err := c.Bootstrap(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func newSummaryCmd() *cobra.Command {
	var flags filterFlags
	var showRecords bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the effective drugs and summary statistics for a filter",
		Long: `Filter the dataset and print the per-drug mean recovery rates, the most
effective drugs and the summary statistics.

Example: drugdash-cli summary --data data.csv --gender F --condition Asthma --min-age 30 --max-age 55`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), &flags, showRecords)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showRecords, "records", false, "Also print the matching patient records")
	return cmd
}

func runSummary(ctx context.Context, flags *filterFlags, showRecords bool) error {
	c, err := open(ctx, flags.dataFile, "")
	if err != nil {
		return err
	}
	defer c.Close()

	svc := c.Dashboard
	criteria, err := svc.ParseCriteria(flags.values())
	if err != nil {
		return err
	}
	view, err := svc.Home(ctx, criteria)
	if err != nil {
		return err
	}

	fmt.Printf("Filter: ages %d-%d, gender %s, condition %s\n",
		criteria.Ages.Min, criteria.Ages.Max, criteria.Gender, criteria.Condition)
	fmt.Println(view.EffectiveText)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if !view.Aggregation.NoData {
		fmt.Fprintln(w, "\nDrug\tMean Recovery Rate\tPatients")
		for _, row := range view.Aggregation.Rows {
			fmt.Fprintf(w, "%s\t%.2f\t%d\n", row.Drug, row.MeanRecoveryRate, row.Count)
		}
	}

	if view.Summary.NoData {
		fmt.Fprintln(w, "\n"+view.Summary.Message)
	} else {
		fmt.Fprintln(w)
		for _, m := range view.Summary.Metrics() {
			fmt.Fprintf(w, "%s\t%s\n", m.Label, m.Value)
		}
	}

	if showRecords && len(view.Patients) > 0 {
		header := make([]string, len(dashboard.PatientColumns))
		for i, f := range dashboard.PatientColumns {
			header[i] = f.Column()
		}
		fmt.Fprintln(w, "\n"+strings.Join(header, "\t"))
		for _, r := range view.Patients {
			cells := make([]string, len(dashboard.PatientColumns))
			for i, f := range dashboard.PatientColumns {
				cells[i] = r.Value(f)
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	}
	return w.Flush()
}

func newExportCmd() *cobra.Command {
	var flags filterFlags
	var credentialsFile, username, password, format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered records to a file after logging in",
		Long: `Export the filtered records as CSV or XLSX. The same credentials as the
dashboard download are required.

Example: drugdash-cli export --username alice --password secret --format xlsx --condition Asthma`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				output = f.FileName()
			}
			return runExport(cmd.Context(), &flags, credentialsFile, username, password, f, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&credentialsFile, "credentials", config.DefaultCredentialsFile, "Path to the credentials CSV file")
	cmd.Flags().StringVar(&username, "username", "", "Export login username")
	cmd.Flags().StringVar(&password, "password", "", "Export login password")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv|xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: filtered_data.<format>)")
	return cmd
}

func runExport(ctx context.Context, flags *filterFlags, credentialsFile, username, password string, format export.Format, output string) error {
	c, err := open(ctx, flags.dataFile, credentialsFile)
	if err != nil {
		return err
	}
	defer c.Close()

	svc := c.Dashboard
	criteria, err := svc.ParseCriteria(flags.values())
	if err != nil {
		return err
	}

	st := svc.RequestDownload("")
	result, err := svc.Login(ctx, st.ID, username, password)
	if err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("%s", result.Message)
	}

	data, err := svc.Export(ctx, result.Session.ID, criteria, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Wrote %s export to %s\n", format, output)
	return nil
}

func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash stored for a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0], cost)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}
