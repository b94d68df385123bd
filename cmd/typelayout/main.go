// Package main provides the typelayout CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/typelayout"
	"github.com/wippyai/typelayout/layout"
	"github.com/wippyai/typelayout/render"
	"github.com/wippyai/typelayout/source/dwarf"
	"github.com/wippyai/typelayout/source/gopkg"
	"github.com/wippyai/typelayout/source/wit"
	"github.com/wippyai/typelayout/typedesc"
)

// Version is the current typelayout CLI version
var Version = "0.3.1"

var (
	flagBinary    string
	flagWitJSON   string
	flagGoPackage string
	flagNoColor   bool
	flagVerbose   bool
	flagConfig    string

	flagRecursive bool
)

var rootCmd = &cobra.Command{
	Use:   "typelayout",
	Short: "Inspect the memory layout of types in compiled programs",
	Long: `typelayout renders the physical memory layout of a named type from a
metadata source: a compiled binary's DWARF debug info, a WIT document, or a
Go package. It shows member offsets, the holes alignment introduces, trailing
padding, and (recursively) the layout of every composite member.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var layoutCmd = &cobra.Command{
	Use:   "layout-of <type-name>",
	Short: "Print the memory layout of a type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := openSource()
		if err != nil {
			return err
		}
		defer closeSrc()

		name := args[0]
		opts := []typelayout.Option{}
		if flagRecursive {
			opts = append(opts, typelayout.Recursive())
		}
		tree, err := typelayout.Inspect(src, name, opts...)
		if err != nil {
			return err
		}
		return newRenderer(cmd.OutOrStdout()).RenderTree(tree, name, flagRecursive)
	},
}

var offsetsCmd = &cobra.Command{
	Use:   "offsets-of <type-name>",
	Short: "Print member names and starting offsets of a type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := openSource()
		if err != nil {
			return err
		}
		defer closeSrc()

		name := args[0]
		desc, err := src.Resolve(name)
		if err != nil {
			return err
		}
		offsets, err := layout.Offsets(desc)
		if err != nil {
			return err
		}
		return newRenderer(cmd.OutOrStdout()).RenderOffsets(name, desc.Name, offsets)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Browse type layouts in a TUI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSrc, err := openSource()
		if err != nil {
			return err
		}
		defer closeSrc()
		return runInteractive(src)
	},
}

// openSource picks the metadata source from the persistent flags. Exactly
// one source must be selected.
func openSource() (typedesc.Resolver, func(), error) {
	selected := 0
	for _, s := range []string{flagBinary, flagWitJSON, flagGoPackage} {
		if s != "" {
			selected++
		}
	}
	if selected != 1 {
		return nil, nil, fmt.Errorf("select exactly one metadata source: --binary, --wit-json, or --go-package")
	}

	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		dwarf.SetLogger(logger)
		wit.SetLogger(logger)
		gopkg.SetLogger(logger)
	}

	switch {
	case flagBinary != "":
		src, err := dwarf.Open(flagBinary)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil
	case flagWitJSON != "":
		src, err := wit.Load(flagWitJSON)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	default:
		src, err := gopkg.Load(flagGoPackage)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}
}

func newRenderer(w io.Writer) *render.Renderer {
	cfg := loadConfig(flagConfig)
	r := render.New(w)
	r.Indent = cfg.indentString()
	switch {
	case flagNoColor || cfg.Color == "never":
		r.Color = false
	case cfg.Color == "always":
		r.Color = true
	default:
		r.Color = render.DetectColor(w)
	}
	return r
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&flagBinary, "binary", "b", "", "Compiled binary with DWARF debug info")
	rootCmd.PersistentFlags().StringVar(&flagWitJSON, "wit-json", "", "WIT document in wasm-tools JSON form")
	rootCmd.PersistentFlags().StringVar(&flagGoPackage, "go-package", "", "Go package pattern to type-check")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/typelayout.yaml)")

	layoutCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Recurse into composite members")

	rootCmd.AddCommand(layoutCmd, offsetsCmd, interactiveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
