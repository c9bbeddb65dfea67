// Package extractor provides the command that snapshots enum metadata of a
// protobuf module into payloadTypes.json and OAModel.json.
package extractor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/takumakei/protoenum-json/extract"
	"github.com/takumakei/protoenum-json/jsonfile"
	"github.com/takumakei/protoenum-json/logging"
	"github.com/takumakei/protoenum-json/source"
)

// Default output file names.
const (
	DefaultPayloadOut = "payloadTypes.json"
	DefaultModelOut   = "OAModel.json"
)

// Main runs the command and exits with status 1 on error.
func Main(ctx context.Context, config Config) {
	cmd := NewCommand(config)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err.Error())
		os.Exit(1)
	}
}

// NewCommand builds the command for config.
func NewCommand(config Config) *cobra.Command {
	config = withDefaults(config)
	flags := new(flagsType)

	cmd := &cobra.Command{
		Use:     config.Use,
		Short:   config.Short,
		Long:    render(config.Long),
		Version: config.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &config, flags)
		},

		ValidArgsFunction: validArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fl := cmd.Flags()
	fl.SortFlags = false
	fl.StringVarP(&flags.Source, "source", "s", config.DefaultSource, "Source `spec` (file.proto, set.binpb, buf:dir, registry:path)")
	fl.StringArrayVarP(&flags.ImportPaths, "proto-path", "I", nil, "Import `dir` for .proto sources")
	fl.StringArrayVar(&flags.Files, "file", nil, "Restrict a descriptor set to `path`")
	fl.StringVar(&flags.Buf, "buf", "buf", "buf `executable`")
	fl.StringVar(&flags.PayloadPrefix, "payload-prefix", config.DefaultPayloadPrefix, "Payload type name `prefix`")
	fl.StringVar(&flags.ModelPrefix, "model-prefix", config.DefaultModelPrefix, "Model enum name `prefix`")
	fl.StringVar(&flags.PayloadOut, "payload-out", config.DefaultPayloadOut, "Payload types `filename.json`, - for stdout")
	fl.StringVar(&flags.ModelOut, "model-out", config.DefaultModelOut, "Model enums `filename.json`, - for stdout")
	fl.StringVarP(&flags.Config, "config", "c", "", "YAML `file` with defaults for the flags above")
	fl.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug messages")

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.MarkFlagFilename("source", "proto", "binpb", "pb", "desc", "protoset")
	cmd.MarkFlagDirname("proto-path")
	cmd.MarkFlagFilename("payload-out", "json")
	cmd.MarkFlagFilename("model-out", "json")
	cmd.MarkFlagFilename("config", "yaml", "yml")
	for _, name := range []string{"payload-prefix", "model-prefix"} {
		cmd.RegisterFlagCompletionFunc(name, func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	}

	return cmd
}

func withDefaults(config Config) Config {
	if config.Use == "" {
		config.Use = "protoenum-json"
	}
	if config.DefaultPayloadPrefix == "" {
		config.DefaultPayloadPrefix = extract.DefaultPayloadPrefix
	}
	if config.DefaultModelPrefix == "" {
		config.DefaultModelPrefix = extract.DefaultModelPrefix
	}
	if config.DefaultPayloadOut == "" {
		config.DefaultPayloadOut = DefaultPayloadOut
	}
	if config.DefaultModelOut == "" {
		config.DefaultModelOut = DefaultModelOut
	}
	return config
}

func render(usage string) string {
	if isTTY(os.Stdout) {
		r, err := glamour.NewTermRenderer(
			glamour.WithEnvironmentConfig(),
			glamour.WithWordWrap(100),
		)
		if err == nil { // if NO error
			if s, err := r.Render(usage); err == nil { // if NO error
				return s
			}
		}
	}
	return usage
}

func validArgs(_ *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []cobra.Completion{"proto", "binpb", "pb", "desc", "protoset"}, cobra.ShellCompDirectiveFilterFileExt
}

type flagsType struct {
	Source        string
	ImportPaths   []string
	Files         []string
	Buf           string
	PayloadPrefix string
	ModelPrefix   string
	PayloadOut    string
	ModelOut      string
	Config        string
	Verbose       bool
}

func run(cmd *cobra.Command, args []string, config *Config, flags *flagsType) error {
	log := logging.New(cmd.ErrOrStderr(), flags.Verbose)
	defer log.Sync()
	ctx := logging.WithLogger(cmd.Context(), log)

	plan, err := newPlan(cmd, args, flags)
	if err != nil {
		return err
	}
	plan.Gen = Gen{Name: config.Use, Version: cmd.Version}

	if plan.Input.Source == "" {
		if isTTY(cmd.InOrStdin()) {
			return pflag.ErrHelp
		}
		return errNoSource
	}

	return Execute(ctx, cmd.OutOrStdout(), plan)
}

// newPlan merges args, explicitly set flags, the config file and the
// flag defaults, in that order of precedence.
func newPlan(cmd *cobra.Command, args []string, flags *flagsType) (*Plan, error) {
	fc := new(FileConfig)
	if flags.Config != "" {
		var err error
		if fc, err = ReadFileConfig(flags.Config); err != nil {
			return nil, fmt.Errorf("config %s: %w", flags.Config, err)
		}
	}
	fl := cmd.Flags()
	pick := func(name, flagValue, fileValue string) string {
		if fl.Changed(name) || fileValue == "" {
			return flagValue
		}
		return fileValue
	}
	pickSlice := func(name string, flagValue, fileValue []string) []string {
		if fl.Changed(name) || len(fileValue) == 0 {
			return flagValue
		}
		return fileValue
	}

	plan := &Plan{
		Input: Input{
			Source:        pick("source", flags.Source, fc.Source),
			ImportPaths:   pickSlice("proto-path", flags.ImportPaths, fc.ProtoPath),
			Files:         pickSlice("file", flags.Files, fc.Files),
			Buf:           pick("buf", flags.Buf, fc.Buf),
			PayloadPrefix: pick("payload-prefix", flags.PayloadPrefix, fc.PayloadPrefix),
			ModelPrefix:   pick("model-prefix", flags.ModelPrefix, fc.ModelPrefix),
		},
		Output: Output{
			PayloadTypes: pick("payload-out", flags.PayloadOut, fc.PayloadOut),
			ModelEnums:   pick("model-out", flags.ModelOut, fc.ModelOut),
		},
	}
	if len(args) > 0 {
		plan.Input.Source = args[0]
	}
	return plan, nil
}

// Execute loads the source of plan, extracts both mappings and writes
// them. Outputs named "-" go to stdout.
func Execute(ctx context.Context, stdout io.Writer, plan *Plan) error {
	log := logging.Get(ctx)
	reg, err := source.Load(ctx, plan.Input.Source, source.Options{
		ImportPaths: plan.Input.ImportPaths,
		Files:       plan.Input.Files,
		Buf:         plan.Input.Buf,
	})
	if err != nil {
		return err
	}

	res, err := extract.Extract(ctx, reg, plan.Input.PayloadPrefix, plan.Input.ModelPrefix)
	if err != nil {
		return err
	}

	if err := write(stdout, plan.Output.PayloadTypes, res.PayloadTypes); err != nil {
		return err
	}
	if err := write(stdout, plan.Output.ModelEnums, res.ModelEnums); err != nil {
		return err
	}
	log.Info("Enums exported",
		zap.String("generator", plan.Gen.Name),
		zap.String("version", plan.Gen.Version),
		zap.String("source", plan.Input.Source),
		zap.String("payloadTypes", plan.Output.PayloadTypes),
		zap.Int("payloadTypeCount", res.PayloadTypes.Len()),
		zap.String("modelEnums", plan.Output.ModelEnums),
		zap.Int("modelEnumCount", res.ModelEnums.Len()),
	)
	return nil
}

func write(stdout io.Writer, path string, v any) error {
	if path == "-" {
		return jsonfile.Encode(stdout, v)
	}
	if err := jsonfile.Write(path, v); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func isTTY(io any) bool {
	if f, ok := io.(*os.File); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}
