package demo

import (
	"fmt"
	"io"

	"github.com/Robin-3/data-structures/internal/linkedlist"
)

func LinkedListImpl(w io.Writer) error {
	title(w, "Lista enlazada")

	list := linkedlist.WithData("Venus")
	step(w, fmt.Sprintf("1.1 Inicialización (está vacío: %t)", list.IsEmpty()), list)

	list = linkedlist.New[string]()
	step(w, fmt.Sprintf("1.2 Inicialización (está vacío: %t)", list.IsEmpty()), list)

	list.Unshift("Saturno")
	step(w, "2.1 Insertar al inicio (en blanco)", list)

	list.Unshift("Plutón")
	step(w, "2.2 Insertar al inicio", list)

	pred := "Plutón"
	if err := linkedlist.InsertAfter(list, pred, "Marte"); err != nil {
		return err
	}
	step(w, fmt.Sprintf("3.1 Después de un valor (predecesor: %s)", pred), list)

	position := 2
	if err := list.Insert(position, "Jupiter"); err != nil {
		return err
	}
	step(w, fmt.Sprintf("3.2 En una posición (indice: %d)", position), list)

	list.Push("Urano")
	step(w, "4. Insertar al final", list)

	position = 0
	if err := list.Set(position, "Tierra"); err != nil {
		return err
	}
	planet, err := list.Get(position)
	if err != nil {
		return err
	}
	step(w, fmt.Sprintf("5. Obtener y establecer data en una posición (indice: %d, valor: %q)", position, planet), list)

	first, err := list.Shift()
	if err != nil {
		return err
	}
	last, err := list.Pop()
	if err != nil {
		return err
	}
	step(w, fmt.Sprintf("6. Quitar los extremos (inicio: %q, final: %q)", first, last), list)
	return nil
}
