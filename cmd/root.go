package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guitarlab/tabcheck/client"
)

var rootCmd = &cobra.Command{
	Use:   "tabcheck",
	Short: "Validates generated guitar tablature against music theory",
	Long: `tabcheck is the verification oracle for the guitar tab generator.
It parses the six-string ASCII tab format and checks pitch, scale
membership, chord tones and CAGED positioning against the parameters
that produced the tab.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "https://guitar-model-lab.onrender.com", "base URL of the tab generator")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "per-request timeout")
	viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.SetEnvPrefix("tabcheck")
	viper.AutomaticEnv()
}

func newClient() *client.Client {
	return client.New(viper.GetString("api_url"), viper.GetDuration("timeout"))
}
