// Package cmd define los comandos del CLI printhub.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd comando base del CLI.
var rootCmd = &cobra.Command{
	Use:   "printhub",
	Short: "Herramientas de línea de comandos para la imprenta",
	Long: `printhub permite cotizar trabajos de impresión sin levantar el servidor.

Usa el mismo motor de precios que la API, con las reglas de respaldo
incorporadas o con un catálogo JSON exportado del panel de admin.

Ejemplos:
  printhub quote --pages 120 --color bw --side double --copies 3
  printhub quote --pages 45 --range "1-10,15" --catalog catalogo.json --tier Student`,
}

// Execute ejecuta el CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd imprime la versión.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Imprime la versión",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("printhub version 0.1.0")
	},
}
