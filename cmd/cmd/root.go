/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tripweaver/internal/config"
	"tripweaver/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tripweaver",
	Short: "Tripweaver turns clustered trip photos into scores, stories and insights.",
	Long: `Tripweaver analyzes a trip: it classifies the scenes photographed at each
place, looks up nearby points of interest, scores every moment, derives a
travel personality profile, weaves a narrative and surfaces patterns worth
remembering.

Input is a trip JSON file produced by an upstream clustering stage; output is
a markdown trip report.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tripweaver.yaml)")
}

// initConfig loads configuration before any command runs.
func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		logger.Error("failed to load configuration", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
}
