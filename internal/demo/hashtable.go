package demo

import (
	"fmt"
	"io"

	"github.com/Robin-3/data-structures/internal/hashtable"
)

func HashTableImpl(w io.Writer) error {
	title(w, "Tabla hash con encadenamiento separado")

	table, err := hashtable.New[string](4)
	if err != nil {
		return err
	}
	step(w, "1. Creación en blanco", table)

	if err := table.Insert("00", "Cien"); err != nil {
		return err
	}
	step(w, "2. Ingresar datos", table)

	if err := table.Set("00", "Cero"); err != nil {
		return err
	}
	step(w, "3. Modificar datos", table)

	if _, err := table.Remove("00"); err != nil {
		return err
	}
	step(w, fmt.Sprintf("4. Eliminar datos (está vacío: %t, buckets en uso: %d)", table.IsEmpty(), table.BucketsLen()), table)

	if err := table.Insert("01", "Uno"); err != nil {
		return err
	}
	if err := table.Insert("10", "Diez"); err != nil {
		return err
	}
	step(w, "5. Colisiones", table)

	if err := table.Rehash(8); err != nil {
		return err
	}
	step(w, fmt.Sprintf("6. Redimensionar (buckets: %d, entradas: %d)", table.BucketCount(), table.EntriesLen()), table)
	return nil
}
