package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	menueditor "github.com/goliatone/go-menu-editor"
	"github.com/goliatone/go-menu-editor/internal/importer"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/internal/tui"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	driver     string
	dsn        string
}

var moduleBuilder = buildModule

func buildModule(ctx context.Context, flags globalFlags) (*menueditor.Module, error) {
	cfg, err := menueditor.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.driver != "" {
		cfg.Storage.Driver = flags.driver
	}
	if flags.dsn != "" {
		cfg.Storage.DSN = flags.dsn
	}
	return menueditor.New(ctx, cfg)
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "menu-editor",
		Short:         "Edit hierarchical navigation menus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&flags.driver, "driver", "", "Storage driver override: sqlite, postgres or memory")
	root.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "Storage DSN override")

	root.AddCommand(
		newEditCommand(flags),
		newImportCommand(flags),
		newExportCommand(flags),
		newListCommand(flags),
	)
	return root
}

func withModule(cmd *cobra.Command, flags *globalFlags, fn func(context.Context, *menueditor.Module) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	module, err := moduleBuilder(ctx, *flags)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()
	return fn(ctx, module)
}

func newEditCommand(flags *globalFlags) *cobra.Command {
	var noMouse bool

	cmd := &cobra.Command{
		Use:   "edit <menu>",
		Short: "Open a menu in the terminal editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModule(cmd, flags, func(ctx context.Context, module *menueditor.Module) error {
				session, err := module.Session(ctx, args[0])
				if err != nil {
					return err
				}
				logger := logging.TUILogger(module.Container().LoggerProvider())
				return tui.Run(ctx, session, tui.WithLogger(logger), tui.WithPointer(!noMouse))
			})
		},
	}
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Use manual move controls instead of dragging")
	return cmd
}

func newImportCommand(flags *globalFlags) *cobra.Command {
	var menuCode string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a menu with the tree described by a JSON or markdown seed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			return withModule(cmd, flags, func(ctx context.Context, module *menueditor.Module) error {
				code := doc.Menu
				if menuCode != "" {
					code = menueditor.CanonicalMenuCode(menuCode)
				}
				tree, err := module.Importer().Import(ctx, code, doc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d items into %s\n", menutree.Count(tree), code)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&menuCode, "menu", "", "Menu code to import into (defaults to the document's menu)")
	return cmd
}

func newExportCommand(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <menu>",
		Short: "Write a menu as a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModule(cmd, flags, func(ctx context.Context, module *menueditor.Module) error {
				doc, err := module.Importer().Export(ctx, menueditor.CanonicalMenuCode(args[0]))
				if err != nil {
					return err
				}
				var w io.Writer = cmd.OutOrStdout()
				if output != "" {
					file, err := os.Create(output)
					if err != nil {
						return err
					}
					defer file.Close()
					w = file
				}
				return importer.Encode(w, doc)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "menus",
		Short: "List stored menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withModule(cmd, flags, func(ctx context.Context, module *menueditor.Module) error {
				list, err := module.Menus().ListMenus(ctx)
				if err != nil {
					return err
				}
				for _, menu := range list {
					tree, err := module.Menus().Load(ctx, menu.Code)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", menu.Code, menutree.Count(tree))
				}
				return nil
			})
		},
	}
}

func readDocument(path string) (importer.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return importer.Document{}, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return importer.ParseSeed(file)
	default:
		return importer.Decode(file)
	}
}
