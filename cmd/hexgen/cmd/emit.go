package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io/ioutil"
)

var (
	outPath string
	pkgName string
)

var emitCmd = &cobra.Command{
	Use:   "emit NAME=HEXLITERAL [NAME=HEXLITERAL ...]",
	Short: "Renders hex literals as fixed-size byte arrays in a Go source file",
	Long: `Decodes each NAME=HEXLITERAL pair and renders a Go source file declaring
var NAME = [N]byte{...} for each, where N is half the literal's length.
Run it from go:generate so that a malformed literal fails the build step
instead of the running program.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decls, err := parseDecls(args)
		if err != nil {
			return err
		}

		src, err := render(pkgName, decls)
		if err != nil {
			return err
		}

		if outPath == "-" {
			fmt.Print(string(src))
			return nil
		}

		if err := ioutil.WriteFile(outPath, src, 0644); err != nil {
			return errors.Wrap(err, "error writing generated file")
		}
		genLogger.Info("wrote generated declarations", "path", outPath, "count", len(decls))
		return nil
	},
}

func init() {
	emitCmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output path, - for stdout")
	emitCmd.Flags().StringVarP(&pkgName, "package", "p", "main", "Package name of the generated file")
	rootCmd.AddCommand(emitCmd)
}
