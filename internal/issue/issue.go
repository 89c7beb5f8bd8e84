// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure class.
type Id int

const (
	// FileNotFoundId is reported when the requested file does not exist.
	FileNotFoundId Id = iota + 1
	// ReadFailedId covers every other I/O failure while reading a file.
	ReadFailedId
	// InvalidArgumentId is reported when a CLI argument fails validation.
	InvalidArgumentId
)

// MarkdownMsg is a Markdown-formatted help page for an issue.
type MarkdownMsg string

// Issue pairs a failure class with its rendered guidance.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// Lookup returns the Issue for id, or nil for unknown ids.
func Lookup(id Id) *Issue {
	return issues[id]
}

// Ids returns every known issue id in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}

// Id returns the issue's identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown help text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's help page with the given glamour style
// path ("auto" picks light/dark from the terminal).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// render is replaced in tests to avoid terminal detection.
var render = glamour.Render

var issues = map[Id]*Issue{
	FileNotFoundId: {
		id: FileNotFoundId,
		mdMsg: `
# Archivo no encontrado

La ruta indicada no existe o no apunta a un archivo.

## Cosas que puede probar
- Verifique que la ruta esté bien escrita
- Use una ruta absoluta o relativa al directorio actual:
~~~
$ pedir clasificar ./numeros.txt
~~~`,
	},
	ReadFailedId: {
		id: ReadFailedId,
		mdMsg: `
# No se pudo leer el archivo

El archivo existe pero la lectura falló.

## Cosas que puede probar
- Compruebe los permisos de lectura del archivo
- Compruebe que la ruta no apunte a un directorio
- Vuelva a intentarlo con modo detallado para ver la causa:
~~~
$ pedir --verbose clasificar ./numeros.txt
~~~`,
	},
	InvalidArgumentId: {
		id: InvalidArgumentId,
		mdMsg: `
# Argumento inválido

Uno de los valores pasados al comando no superó la validación.

## Cosas que puede probar
- Revise el valor rechazado en el mensaje de error
- Consulte la ayuda del comando:
~~~
$ pedir validar --help
~~~`,
	},
}
