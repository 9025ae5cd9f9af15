// seed puebla los catálogos base de la aplicación: roles, permisos, la
// relación rol-permiso y un usuario administrador inicial.
//
// Uso: go run ./cmd/seed
// Idempotente: usa ON CONFLICT DO NOTHING, puede correrse varias veces.
//
// Variables relevantes: DATABASE_URL (o DB_*), SEED_ADMIN_EMAIL,
// SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/infrastructure/postgres"
	"github.com/jhoicas/siloe-api/pkg/config"
)

// Los IDs de rol son fijos: el rol 5 (shopKeeper) es el que se asigna por
// defecto a los tenderos creados desde una tienda.
var roles = []struct {
	id   int64
	name string
}{
	{1, "admin"},
	{2, "production"},
	{3, "distribution"},
	{4, "accounting"},
	{5, "shopKeeper"},
}

var permissions = []struct {
	code        string
	name        string
	description string
}{
	{"manage-users", "Gestionar usuarios", "Crear, editar y eliminar usuarios"},
	{"manage-stores", "Gestionar tiendas", "Crear, editar y eliminar tiendas y sus tenderos"},
	{"view-routes", "Ver rutas", "Consultar rutas de reparto y manifiestos"},
	{"manage-catalog", "Gestionar catálogos", "Tipos de tienda, unidades, medios de pago, empresas y productos"},
	{"manage-inventory", "Gestionar inventario", "Insumos, proveedores, recetas y movimientos de stock"},
	{"view-supplies-stock", "Ver saldos de insumos", "Consultar los saldos vigentes de insumos"},
	{"manage-sales", "Gestionar ventas", "Registrar y consultar ventas"},
}

// rolePerms: qué permisos recibe cada rol.
var rolePerms = map[int64][]string{
	1: {"manage-users", "manage-stores", "view-routes", "manage-catalog", "manage-inventory", "view-supplies-stock", "manage-sales"},
	2: {"manage-inventory", "view-supplies-stock", "manage-catalog"},
	3: {"manage-stores", "view-routes", "manage-sales"},
	4: {"view-supplies-stock", "manage-sales"},
	5: {"manage-sales"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	for _, r := range roles {
		_, err := pool.Exec(ctx,
			`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			r.id, r.name)
		if err != nil {
			fail("insertar rol %s: %v", r.name, err)
		}
	}
	// Ajustar la secuencia tras insertar con IDs explícitos
	if _, err := pool.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('roles', 'id'), (SELECT MAX(id) FROM roles))`); err != nil {
		fail("ajustar secuencia de roles: %v", err)
	}

	for _, p := range permissions {
		_, err := pool.Exec(ctx, `
			INSERT INTO permissions (code, name, description, active)
			VALUES ($1, $2, $3, true)
			ON CONFLICT (code) DO NOTHING`,
			p.code, p.name, p.description)
		if err != nil {
			fail("insertar permiso %s: %v", p.code, err)
		}
	}

	for roleID, codes := range rolePerms {
		for _, code := range codes {
			_, err := pool.Exec(ctx, `
				INSERT INTO role_permissions (role_id, permission_id)
				SELECT $1, id FROM permissions WHERE code = $2
				ON CONFLICT DO NOTHING`,
				roleID, code)
			if err != nil {
				fail("asignar permiso %s al rol %d: %v", code, roleID, err)
			}
		}
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@panificadorasiloe.com")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", cfg.Auth.DefaultManagerPassword)
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		fail("hashear password admin: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (name, email, phone, password, role_id, status, created_at, updated_at)
		VALUES ('Administrador', $1, '', $2, 1, 'active', now(), now())
		ON CONFLICT (email) DO NOTHING`,
		adminEmail, string(hash))
	if err != nil {
		fail("insertar admin: %v", err)
	}

	fmt.Printf("seed completado: %d roles, %d permisos, admin %s\n",
		len(roles), len(permissions), adminEmail)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
