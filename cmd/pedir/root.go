// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pedir.
package cmd

import (
	"context"
	"fmt"
	"os"

	"pedir-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, available to all commands.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pedir",
		Short: "Entradas validadas para la consola",
		Long: TitleStyle.Render("pedir") + SubtitleStyle.Render(" - Entradas validadas para la consola") + `

pedir es una pequeña herramienta de apoyo para cursos introductorios
de programación: pide valores por consola en bucle hasta que sean
válidos, valida emails y CUIT/CUIL, y clasifica archivos de números.

En cualquier pregunta interactiva puede escribirse la palabra de
cancelación (por defecto 'CANCELAR') para abortar la operación.

` + SubtitleStyle.Render("Ejemplos:") + `
  pedir formulario                 Recorre todos los tipos de entrada
  pedir validar email ana@b.com    Valida direcciones de email
  pedir validar cuit 20-12345678-6 Valida CUIT/CUIL
  pedir clasificar notas.txt --min 0 --max 10`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "habilita salida detallada")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "archivo de configuración (por defecto $HOME/.config/pedir/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(formularioCmd)
	rootCmd.AddCommand(validarCmd)
	rootCmd.AddCommand(clasificarCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFileOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Config problems are warnings; the defaults always work.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Advertencia: ")+err.Error())
	}
	if loaded != nil {
		cfg = loaded
	}

	if verbose || cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.Debug("configuración cargada", "cancel_word", cfg.CancelWord, "color_scheme", cfg.UI.ColorScheme)
}
