// cmd/main.go
package main

import cmd "github.com/RamonVargasG/Pruebas-de-Software-A01794580/cmd/pruebas"

// main starts the pruebas CLI by delegating to the cobra root command
// defined in the pruebas package.
func main() {
	cmd.Execute()
}
