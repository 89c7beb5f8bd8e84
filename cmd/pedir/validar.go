// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"pedir-cli/internal/issue"
	"pedir-cli/internal/validate"

	"github.com/spf13/cobra"
)

var validarCmd = &cobra.Command{
	Use:   "validar",
	Short: "Valida valores pasados como argumentos",
}

var validarEmailCmd = &cobra.Command{
	Use:   "email <valor>...",
	Short: "Valida direcciones de email",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidar(cmd, args, validate.Email, "email")
	},
}

var validarCuitCmd = &cobra.Command{
	Use:   "cuit <valor>...",
	Short: "Valida CUIT/CUIL con dígito verificador",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidar(cmd, args, validate.CUIT, "CUIT/CUIL")
	},
}

func init() {
	validarCmd.AddCommand(validarEmailCmd)
	validarCmd.AddCommand(validarCuitCmd)
}

// runValidar applies check to every argument and prints one line per
// value. Any invalid value makes the command fail.
func runValidar(cmd *cobra.Command, args []string, check func(string) bool, kind string) error {
	styler := stylerFor(cfg.UI.ColorScheme, os.Stdout)
	out := cmd.OutOrStdout()

	invalid := invalidValues(args, check)
	for _, arg := range args {
		if check(arg) {
			fmt.Fprintln(out, styler.OK(arg))
		} else {
			fmt.Fprintln(out, styler.Error(arg))
		}
	}

	if len(invalid) > 0 {
		cmd.SilenceUsage = true
		return issue.NewErrorContext().
			WithOperation("validar " + kind).
			WithResource(strings.Join(invalid, ", ")).
			WithSuggestion("Revise los valores marcados con ✖").
			BuildError()
	}
	return nil
}

// invalidValues returns the arguments that fail check, in order.
func invalidValues(args []string, check func(string) bool) []string {
	var invalid []string
	for _, arg := range args {
		if !check(arg) {
			invalid = append(invalid, arg)
		}
	}
	return invalid
}
