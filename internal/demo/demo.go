package demo

import (
	"fmt"
	"io"
	"strings"
)

type Func func(w io.Writer) error

type Demo struct {
	Name  string
	Title string
	Run   Func
}

// Registry lists every demo in the order the CLI runs them by default.
var Registry = []Demo{
	{Name: "static-array", Title: "Array estático", Run: StaticArrayBuiltin},
	{Name: "dynamic-array", Title: "Array dinámico", Run: DynamicArrayBuiltin},
	{Name: "static-array-impl", Title: "Implementación de un array estático", Run: StaticArrayImpl},
	{Name: "dynamic-array-impl", Title: "Implementación de un array dinámico", Run: DynamicArrayImpl},
	{Name: "linked-list", Title: "Lista enlazada", Run: LinkedListImpl},
	{Name: "hash-table", Title: "Tabla hash con encadenamiento separado", Run: HashTableImpl},
}

func Names() []string {
	names := make([]string, 0, len(Registry))
	for _, d := range Registry {
		names = append(names, d.Name)
	}
	return names
}

func Lookup(name string) (Demo, bool) {
	for _, d := range Registry {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Select resolves names in order, or returns the whole registry when names
// is empty.
func Select(names ...string) ([]Demo, error) {
	if len(names) == 0 {
		return Registry, nil
	}

	selected := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, d)
	}
	return selected, nil
}

// Run executes the named demos in order. Unknown names are reported before
// anything is written.
func Run(w io.Writer, names ...string) error {
	selected, err := Select(names...)
	if err != nil {
		return err
	}

	for _, d := range selected {
		if err := d.Run(w); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}

func title(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

func step(w io.Writer, label string, container any) {
	fmt.Fprintf(w, "  %s:\n    %v\n", label, container)
}
