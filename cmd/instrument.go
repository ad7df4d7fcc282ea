package cmd

import (
	"context"
	"log"

	"github.com/dave/dst/decorator"
	"github.com/go-easy-hotreload/go-easy-hotreload/cli"
	"github.com/go-easy-hotreload/go-easy-hotreload/internal/comment"
	"github.com/go-easy-hotreload/go-easy-hotreload/parser"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

var (
	debug       bool
	goGet       bool
	packagePath string
	importPath  string
	diffFile    string
)

var instrumentCmd = &cobra.Command{
	Use:   "instrument",
	Short: "add hot reload instrumentation",
	Long:  "add hot reload instrumentation to every //inject:hotreload view declaration in the application",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := cli.NewConfig(packagePath, importPath, diffFile, debug, goGet)
		cobra.CheckErr(err)

		if err := Instrument(cmd.Context(), cfg); err != nil {
			log.Fatal(err)
		}
	},
}

// Instrument loads the packages under cfg.PackagePath, expands every annotated view
// declaration and writes the changes as a diff to cfg.DiffFile.
func Instrument(ctx context.Context, cfg *cli.Config) error {
	comment.EnableConsolePrinter(cfg.PackagePath, cfg.Debug)

	pkgs, err := decorator.Load(&packages.Config{Dir: cfg.PackagePath, Mode: packages.LoadSyntax}, cfg.PackageName)
	if err != nil {
		return err
	}

	manager := parser.NewInstrumentationManager(pkgs, cfg.ImportPath, cfg.DiffFile, cfg.PackagePath)
	if err := manager.CreateDiffFile(); err != nil {
		return err
	}

	if err := manager.DetectViewDeclarations(); err != nil {
		return err
	}

	if err := manager.InstrumentApplication(ctx); err != nil {
		return err
	}

	if cfg.GoGet {
		if err := manager.AddRequiredModules(ctx); err != nil {
			return err
		}
	}

	if err := manager.WriteDiff(); err != nil {
		return err
	}

	comment.WriteAll()
	return nil
}

func init() {
	instrumentCmd.Flags().BoolVar(&debug, "debug", false, "enable debugging output")
	instrumentCmd.Flags().BoolVar(&goGet, "go-get", false, "run go get for the injection runtime module")
	instrumentCmd.Flags().StringVar(&packagePath, "path", "", "specify package path")
	instrumentCmd.Flags().StringVar(&importPath, "import", "", "set the import path of the injection runtime (default "+cli.DefaultImportPath+")")
	instrumentCmd.Flags().StringVar(&diffFile, "diff", "", "specify diff output file path")
	cobra.MarkFlagFilename(instrumentCmd.Flags(), "diff", ".diff") // for file completion

	rootCmd.AddCommand(instrumentCmd)
}
