package richtext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/richtext/pkg/document"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/formats"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/output"
	"github.com/arthur-debert/richtext/pkg/render/extensions"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		outPath string
		asYAML  bool
	)

	cmd := &cobra.Command{
		Use:               "render [FILE]",
		Short:             MsgRenderShort,
		Long:              MsgRenderLong,
		Example:           MsgRenderExample,
		Args:              cobra.MaximumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: documentCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd.InOrStdin(), inputPath(args), asYAML)
			if err != nil {
				return err
			}

			name := a.cfg.Render.Format
			if name == "" && outPath != "" {
				name = formatForPath(outPath)
			}
			stdout := stdoutFile(cmd)
			format, err := formats.Get(output.ResolveFormat(name, stdout))
			if err != nil {
				return err
			}

			opts, err := a.formatOptions(format.Name, outPath == "" && stdout != nil && output.ColorEnabled(stdout))
			if err != nil {
				return err
			}

			defer logging.LogOperationStart(log.Logger, "render "+format.Name)()
			out, err := format.Render(doc, opts)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), MsgWroteOutput, format.Name, outPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", MsgFlagFormat)
	flags.StringVarP(&outPath, "output", "o", "", MsgFlagOutput)
	flags.String("key-prefix", "", MsgFlagKeyPrefix)
	flags.Int("max-depth", 0, MsgFlagMaxDepth)
	flags.Bool("iterative", false, MsgFlagIterative)
	flags.Bool("line-breaks", false, MsgFlagLineBreaks)
	flags.String("links", "", MsgFlagLinks)
	flags.Bool("emit-keys", false, MsgFlagEmitKeys)
	flags.Int("indent", 0, MsgFlagIndent)
	flags.Int("width", 0, MsgFlagWidth)
	flags.String("theme", "", MsgFlagTheme)
	flags.String("glamour-style", "", MsgFlagGlamourStyle)
	flags.BoolVar(&asYAML, "yaml", false, MsgFlagYAML)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formats.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// formatOptions turns the loaded configuration into options for format.
func (a *app) formatOptions(format string, color bool) (formats.Options, error) {
	cfg := a.cfg
	logger := logging.GetLogger("render")

	opts := formats.Options{
		KeyPrefix:  cfg.Render.KeyPrefix,
		MaxDepth:   cfg.Render.MaxDepth,
		Iterative:  cfg.Render.Iterative,
		LineBreaks: cfg.Render.LineBreaks,
		Indent:     cfg.XML.Indent,
		Width:      cfg.Terminal.Width,
		Theme:      cfg.Terminal.Theme,
		Color:      color,
		Logger:     &logger,

		GlamourStyle: cfg.Glamour.Style,
	}
	switch format {
	case "html":
		opts.EmitKeys = cfg.HTML.EmitKeys
	case "xml":
		opts.EmitKeys = cfg.XML.EmitKeys
	}

	if cfg.Render.Links != "" {
		f, err := os.Open(cfg.Render.Links)
		if err != nil {
			return formats.Options{}, fmt.Errorf(MsgErrLoadLinks, cfg.Render.Links, err)
		}
		defer f.Close()
		resolver, err := extensions.LoadLinks(f)
		if err != nil {
			return formats.Options{}, fmt.Errorf(MsgErrLoadLinks, cfg.Render.Links, err)
		}
		opts.Resolver = resolver
	}
	return opts, nil
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// readDocument decodes path, or stdin for "-". YAML is picked by flag or extension.
func readDocument(stdin io.Reader, path string, asYAML bool) (*document.Node, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf(MsgErrReadInput, path, err)
		}
		defer f.Close()
		r = f
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode := document.Decode
	if asYAML || ext == ".yaml" || ext == ".yml" {
		decode = document.DecodeYAML
	}

	doc, err := decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentDecode, "failed to decode %s", displayPath(path)).
			WithDetail("path", path)
	}
	return doc, nil
}

func displayPath(path string) string {
	if path == "-" {
		return "standard input"
	}
	return path
}

// formatForPath picks the format whose extension alone matches path.
func formatForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	match := ""
	for _, f := range formats.All() {
		if f.Extension != ext {
			continue
		}
		if match != "" {
			return ""
		}
		match = f.Name
	}
	return match
}

func documentCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}
