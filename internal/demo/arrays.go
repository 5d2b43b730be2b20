package demo

import (
	"fmt"
	"io"
	"slices"

	"github.com/Robin-3/data-structures/internal/array"
	"github.com/Robin-3/data-structures/internal/render"
)

func planetSlots(planets []string) string {
	return render.Slots(planets, func(i int) bool { return planets[i] != "" })
}

// StaticArrayBuiltin walks a plain Go array, shifting by hand.
func StaticArrayBuiltin(w io.Writer) error {
	title(w, "Array estático")

	var planets [6]string
	step(w, "1. Inicialización", planetSlots(planets[:]))

	planets[0] = "Venus"
	planets[1] = "Plutón"
	planets[2] = "Tierra"
	planets[3] = "Jupiter"
	step(w, "2. Asignación de valores", planetSlots(planets[:]))

	for i := len(planets) - 1; i > 0; i-- {
		planets[i] = planets[i-1]
	}
	planets[0] = "Mercurio"
	step(w, "3. Insertar al inicio", planetSlots(planets[:]))

	position := 4
	for i := len(planets) - 1; i > position; i-- {
		planets[i] = planets[i-1]
	}
	planets[position] = "Marte"
	step(w, fmt.Sprintf("4. Insertar en una posición arbitraria (indice: %d)", position), planetSlots(planets[:]))

	position = 2
	planet := planets[position]
	for i := position; i < len(planets)-1; i++ {
		planets[i] = planets[i+1]
	}
	planets[len(planets)-1] = ""
	step(w, fmt.Sprintf("5. Eliminar de una posición arbitraria (indice: %d, planeta: %q)", position, planet), planetSlots(planets[:]))
	return nil
}

func DynamicArrayBuiltin(w io.Writer) error {
	title(w, "Array dinámico")

	var planets []string
	step(w, "1. Inicialización", render.List(slices.Values(planets)))

	planets = append(planets, "Venus", "Plutón", "Tierra", "Jupiter")
	step(w, "2. Insertar al final", render.List(slices.Values(planets)))

	position := 0
	planets = slices.Insert(planets, position, "Mercurio")
	step(w, fmt.Sprintf("3. Insertar al inicio (indice: %d)", position), render.List(slices.Values(planets)))

	position = 4
	planets = slices.Insert(planets, position, "Marte")
	step(w, fmt.Sprintf("4. Insertar en una posición arbitraria (indice: %d)", position), render.List(slices.Values(planets)))

	position = 2
	planet := planets[position]
	planets = slices.Delete(planets, position, position+1)
	step(w, fmt.Sprintf("5. Eliminar de una posición arbitraria (indice: %d, planeta: %q)", position, planet), render.List(slices.Values(planets)))
	return nil
}

func StaticArrayImpl(w io.Writer) error {
	title(w, "Implementación de un array estático")

	planets := array.NewStaticArray[string](5)
	step(w, "1. Inicialización", planets)

	planets = array.StaticArrayWithValues(5, []string{"Venus", "Plutón", "Tierra", "Marte"})
	step(w, "2. Inicialización con valores", planets)

	if err := planets.Push("Jupiter"); err != nil {
		return err
	}
	step(w, "3. Insertar al final", planets)

	position := 0
	if err := planets.Insert(position, "Mercurio"); err != nil {
		return err
	}
	step(w, fmt.Sprintf("4. Insertar en una posición arbitraria (indice: %d)", position), planets)

	for _, position := range []int{2, 0} {
		planet, err := planets.Remove(position)
		if err != nil {
			return err
		}
		step(w, fmt.Sprintf("5. Eliminar de una posición arbitraria (indice: %d, planeta: %q)", position, planet), planets)
	}
	return nil
}

func DynamicArrayImpl(w io.Writer) error {
	title(w, "Implementación de un array dinámico")

	planets := array.NewDynamicArray[string](5)
	step(w, dynamicLabel("1. Inicialización", planets), planets)

	planets = array.DynamicArrayWithValues(5, []string{"Venus", "Plutón", "Tierra", "Marte"})
	step(w, dynamicLabel("2. Inicialización con valores", planets), planets)

	planets.Push("Jupiter")
	step(w, dynamicLabel("3. Insertar al final", planets), planets)

	position := 0
	if err := planets.Insert(position, "Mercurio"); err != nil {
		return err
	}
	step(w, dynamicLabel(fmt.Sprintf("4. Insertar en una posición arbitraria (indice: %d)", position), planets), planets)

	for _, position := range []int{2, 0} {
		planet, err := planets.Remove(position)
		if err != nil {
			return err
		}
		step(w, dynamicLabel(fmt.Sprintf("5. Eliminar de una posición arbitraria (indice: %d, planeta: %q)", position, planet), planets), planets)
	}
	return nil
}

func dynamicLabel(label string, a *array.DynamicArray[string]) string {
	return fmt.Sprintf("%s [longitud: %d, capacidad: %d]", label, a.Len(), a.Cap())
}
