// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"pedir-cli/internal/prompt"

	"github.com/spf13/cobra"
)

// formularioCmd walks through every prompt type once, as a live demo
// of the validation loops.
var formularioCmd = &cobra.Command{
	Use:   "formulario",
	Short: "Recorre un formulario de ejemplo con todos los tipos de entrada",
	Long: `Pide un valor de cada tipo (texto, opción, entero, decimal, email,
CUIT y confirmación) validando cada respuesta en bucle. Escriba la
palabra de cancelación en cualquier pregunta para abortar.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFormulario(cmd)
	},
}

func runFormulario(cmd *cobra.Command) error {
	styler := stylerFor(cfg.UI.ColorScheme, os.Stdout)
	p := prompt.New(prompt.Options{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
		Styler: styler,
		Cancel: cfg.CancelWord,
	})
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styler.Title("Formulario de ejemplo"))
	fmt.Fprintln(out, styler.Info(fmt.Sprintf("Escriba '%s' en cualquier pregunta para abortar.", p.CancelWord())))

	answers, err := askFormulario(p)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(out, styler.Warn("Formulario cancelado."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styler.Title("Resumen"))
	fmt.Fprintf(out, "  Nombre: %s\n", answers.Nombre)
	fmt.Fprintf(out, "  Edad: %d\n", answers.Edad)
	fmt.Fprintf(out, "  Altura: %.2f m\n", answers.Altura)
	fmt.Fprintf(out, "  Turno: %s\n", answers.Turno)
	fmt.Fprintf(out, "  Email: %s\n", answers.Email)
	fmt.Fprintf(out, "  CUIT: %s\n", answers.CUIT)
	if answers.Confirmado {
		fmt.Fprintln(out, styler.OK("Datos confirmados."))
	} else {
		fmt.Fprintln(out, styler.Warn("Datos descartados."))
	}
	return nil
}

// formularioAnswers collects one answer per prompt type.
type formularioAnswers struct {
	Nombre     string
	Edad       int
	Altura     float64
	Turno      string
	Email      string
	CUIT       string
	Confirmado bool
}

// askFormulario runs the prompts in order. ErrCancelled from any of
// them aborts the whole form.
func askFormulario(p *prompt.Prompter) (*formularioAnswers, error) {
	var a formularioAnswers
	var err error

	if a.Nombre, err = p.Text("Nombre: "); err != nil {
		return nil, err
	}
	if a.Edad, err = p.Int("Edad: ", prompt.MinInt(0), prompt.MaxInt(120)); err != nil {
		return nil, err
	}
	if a.Altura, err = p.Float("Altura en metros: ", prompt.MinFloat(0.3), prompt.MaxFloat(2.5)); err != nil {
		return nil, err
	}
	if a.Turno, err = p.Option("Turno: ", []string{"Mañana", "Tarde", "Noche"}); err != nil {
		return nil, err
	}
	if a.Email, err = p.Email("Email: "); err != nil {
		return nil, err
	}
	if a.CUIT, err = p.CUIT("CUIT/CUIL (ej 20-12345678-6): "); err != nil {
		return nil, err
	}
	if a.Confirmado, err = p.Confirm("¿Confirmar? (s/n) "); err != nil {
		return nil, err
	}

	return &a, nil
}
