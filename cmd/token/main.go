// Command token emite un Bearer Token para un cliente de la API usando JWT_SECRET.
//
//	go run ./cmd/token --client erp-contable --scopes batch,report,voucher
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/validador-ec/pkg/config"
	"github.com/jhoicas/validador-ec/pkg/jwt"
)

func main() {
	clientID := pflag.String("client", "", "identificador del cliente (requerido)")
	scopes := pflag.StringSlice("scopes", []string{jwt.ScopeBatch, jwt.ScopeReport, jwt.ScopeVoucher}, "scopes separados por coma")
	minutes := pflag.Int("minutes", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no configurado: la API no exige tokens")
		os.Exit(1)
	}
	if *minutes <= 0 {
		*minutes = cfg.JWT.Expiration
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *clientID, *scopes, cfg.JWT.Issuer, *minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
