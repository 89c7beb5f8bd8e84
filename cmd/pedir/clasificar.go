// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pedir-cli/internal/issue"
	"pedir-cli/internal/lineset"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	clasificarMin    int
	clasificarMax    int
	clasificarSinRec bool

	clasificarCmd = &cobra.Command{
		Use:   "clasificar <archivo>",
		Short: "Separa las líneas de un archivo en enteros válidos y rechazados",
		Long: `Lee un archivo de texto línea por línea y lo separa en dos listas:
los enteros que pudieron interpretarse (dentro del rango opcional
--min/--max) y el resto de las líneas tal como aparecen en el archivo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasificar(cmd, args[0])
		},
	}
)

func init() {
	clasificarCmd.Flags().IntVar(&clasificarMin, "min", 0, "mínimo inclusivo para aceptar un entero")
	clasificarCmd.Flags().IntVar(&clasificarMax, "max", 0, "máximo inclusivo para aceptar un entero")
	clasificarCmd.Flags().BoolVar(&clasificarSinRec, "sin-recortar", false, "no recorta espacios alrededor de cada línea")
}

func runClasificar(cmd *cobra.Command, path string) error {
	styler := stylerFor(cfg.UI.ColorScheme, os.Stdout)
	out := cmd.OutOrStdout()

	lines, err := lineset.ReadLines(path, !clasificarSinRec)
	if err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		reportReadFailure(cmd, err)
		return err
	}
	log.Debug("archivo leído", "ruta", path, "líneas", len(lines))

	opts := classifyOptions(cmd)
	valid, rejected := lineset.ClassifyInts(lines, opts...)

	fmt.Fprintln(out, styler.Title(fmt.Sprintf("Clasificación de %s", path)))
	fmt.Fprintln(out, styler.OK(fmt.Sprintf("Válidos (%d): %v", len(valid), valid)))
	fmt.Fprintln(out, styler.Error(fmt.Sprintf("Rechazados (%d): %q", len(rejected), rejected)))
	return nil
}

// classifyOptions maps only the flags the user actually set, so an
// unset bound stays unbounded.
func classifyOptions(cmd *cobra.Command) []lineset.Option {
	var opts []lineset.Option
	if cmd.Flags().Changed("min") {
		opts = append(opts, lineset.Min(clasificarMin))
	}
	if cmd.Flags().Changed("max") {
		opts = append(opts, lineset.Max(clasificarMax))
	}
	return opts
}

// reportReadFailure prints the help page for the failure class to
// stderr. Rendering problems fall back to the plain error text, which
// the caller returns anyway.
func reportReadFailure(cmd *cobra.Command, err error) {
	id := issue.ReadFailedId
	if errors.Is(err, fs.ErrNotExist) {
		id = issue.FileNotFoundId
	}
	if page, renderErr := issue.Lookup(id).Render("auto"); renderErr == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), page)
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintln(cmd.ErrOrStderr(), ae.Format(verbose))
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
}
