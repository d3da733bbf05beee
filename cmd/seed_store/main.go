// seed_store escribe la colección de demostración en el almacenamiento local
// (clave employees_data). Sin -force no pisa datos existentes.
//
// Uso: go run ./cmd/seed_store [-force]
// Usa STORAGE_DIR / STORAGE_FILE igual que cmd/api; el servidor debe estar detenido
// porque bbolt bloquea el archivo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "sobrescribir employees_data aunque ya tenga registros")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	kv, err := localstore.OpenBoltStore(cfg.Storage.Dir, cfg.Storage.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()
	storage := localstore.NewJSONStorage(kv, log.Component("storage"))

	var existing []entity.Employee
	if storage.Get(repository.KeyEmployees, &existing) && len(existing) > 0 && !*force {
		fmt.Printf("employees_data ya tiene %d registros; use -force para reemplazarlos\n", len(existing))
		return
	}

	seed := directory.SeedEmployees()
	if !storage.Set(repository.KeyEmployees, seed) {
		kv.Close()
		fmt.Fprintln(os.Stderr, "No se pudo escribir employees_data (ver log)")
		os.Exit(1)
	}
	fmt.Printf("Escritos %d empleados en %s/%s\n", len(seed), cfg.Storage.Dir, cfg.Storage.File)
}
