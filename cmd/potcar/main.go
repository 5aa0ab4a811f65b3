// Command potcar importiert VASP-POTCAR-Dateien und verwaltet Hubbard-Parameter ohne laufenden Server.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
