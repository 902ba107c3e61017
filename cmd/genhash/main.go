// genhash imprime el hash bcrypt de una contraseña, útil para sembrar
// usuarios a mano. Uso: genhash [contraseña]
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	clave := "tramites2026"
	if len(os.Args) > 1 {
		clave = os.Args[1]
	}
	h, err := bcrypt.GenerateFromPassword([]byte(clave), 12)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(string(h))
}
