package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	apiURL    string
	verbose   bool
	outputFmt string
)

// Config holds CLI configuration
type Config struct {
	APIURL string `mapstructure:"api_url"`
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mailer-cli",
	Short: "mail-sender CLI - career, referral and email management tool",
	Long: `mailer-cli provides command-line access to the mail-sender backend.
Manage career links and referral contacts, send application emails, and
inspect the send history from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig()
		if verbose {
			fmt.Printf("API URL: %s\n", apiURL)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mailer-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "mail-sender API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "output format (table, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))

	// Add subcommands
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(referralsCmd)
	rootCmd.AddCommand(emailsCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(healthCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mailer-cli")
	}

	// Environment variables
	viper.SetEnvPrefix("MAILER")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Printf("Using config file: %s\n", viper.ConfigFileUsed())
	}

	if apiURL == "" {
		apiURL = viper.GetString("api_url")
	}
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
}

func client() *MailerClient {
	return NewMailerClient(apiURL)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Manage company career links",
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List career links",
	RunE: func(cmd *cobra.Command, args []string) error {
		careers, err := client().ListCareers()
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(careers)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tLINK")
		for _, c := range careers {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.CompanyName, c.CareerLink)
		}
		return w.Flush()
	},
}

var careersAddCmd = &cobra.Command{
	Use:   "add <company> <link>",
	Short: "Add a career link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client().AddCareer(args[0], args[1])
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(c)
		}
		fmt.Printf("created career %d: %s\n", c.ID, c.CompanyName)
		return nil
	},
}

var careersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a career link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := client().DeleteCareer(id); err != nil {
			return err
		}
		fmt.Printf("deleted career %d\n", id)
		return nil
	},
}

var referralsCmd = &cobra.Command{
	Use:   "referrals",
	Short: "Manage referral contacts",
}

var referralsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List referral contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, err := client().ListReferrals()
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(refs)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tLINKEDIN")
		for _, r := range refs {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.CompanyName, r.LinkedInURL)
		}
		return w.Flush()
	},
}

var referralsAddCmd = &cobra.Command{
	Use:   "add <company> <linkedin-url>",
	Short: "Add a referral contact",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := client().AddReferral(args[0], args[1])
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(r)
		}
		fmt.Printf("created referral %d: %s\n", r.ID, r.CompanyName)
		return nil
	},
}

var referralsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a referral contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := client().DeleteReferral(id); err != nil {
			return err
		}
		fmt.Printf("deleted referral %d\n", id)
		return nil
	},
}

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Show the email send history (most recent first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := client().ListEmails()
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(logs)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tSENT AT\tSTATUS")
		for _, l := range logs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", l.ID, l.Email, l.SentAt.Format("2006-01-02 15:04:05"), l.Status)
		}
		return w.Flush()
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <email>",
	Short: "Send the application email to a recipient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := client().SendEmail(args[0])
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(res)
		}
		fmt.Printf("%s: %s\n", res.Status, res.Message)
		if res.Status != "success" {
			os.Exit(1)
		}
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API health",
	RunE: func(cmd *cobra.Command, args []string) error {
		pong, err := client().Ping()
		if err != nil {
			return err
		}
		h, err := client().Health()
		if err != nil {
			return err
		}
		if outputFmt == "json" {
			return printJSON(h)
		}
		fmt.Printf("ping: %s\n", pong)
		fmt.Printf("status: %s (version %s)\n", h.Status, h.Version)
		fmt.Printf("db: %s, cache: %s\n", h.DB, h.Cache)
		return nil
	},
}

func init() {
	careersCmd.AddCommand(careersListCmd, careersAddCmd, careersDeleteCmd)
	referralsCmd.AddCommand(referralsListCmd, referralsAddCmd, referralsDeleteCmd)
}
