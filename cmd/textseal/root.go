package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/TheMichaelB/textseal/internal/config"
	"github.com/TheMichaelB/textseal/internal/crypto"
	"github.com/TheMichaelB/textseal/internal/events"
	"github.com/TheMichaelB/textseal/internal/models"
)

var errMissingCommand = errors.New("missing command: expected enc, dec, derive or config")

// app carries what every subcommand needs once config is loaded.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Flags
	configPath string
	jsonOutput bool
	noColor    bool

	cfg       *config.Config
	logger    *events.Logger
	deriver   crypto.KeyDeriver
	normalize func(string) string
	provider  crypto.Provider
	out       *printer

	// prompt reads a password without echo; replaced in tests.
	prompt func(prompt string) (string, error)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	a.prompt = a.promptPassword
	return a
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textseal",
		Short: "Encrypt and decrypt short text with a password",
		Long: `textseal encrypts text with AES-256-CBC under a key derived from a
password and prints base64(IV || ciphertext). There is no integrity check:
a wrong password and a corrupted input look the same.`,
		Example: `  textseal enc secret "hello world"
  textseal dec secret AAECAwQFBgcICQoLDA0OD2AhZe5WNIj9nDLpIW9FeJc=
  textseal enc - "hello world"        # prompt for the password
  echo "hello" | textseal enc secret -  # read text from stdin
  textseal enc -- -pw "-5 degrees"     # password or text starting with "-"`,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errMissingCommand
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before a password or text that starts with \"-\")", err)
	})

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "",
		"Config file (default: textseal.{yaml,json,toml} in . or ~/.config/textseal)")
	flags.String("scheme", crypto.SchemeSHA256,
		"Key derivation scheme: sha256 or pbkdf2")
	flags.Int("iterations", crypto.DefaultPBKDF2Iterations,
		"PBKDF2 iterations (pbkdf2 scheme only)")
	flags.String("normalize", "none",
		"Unicode normalization applied to the password: none, nfc or nfkc")
	flags.Bool("strict", false,
		"Exit with status 1 when encryption or decryption fails")
	flags.String("log-level", "warn",
		"Log level: debug, info, warn or error")
	flags.BoolVar(&a.jsonOutput, "json", false,
		"Print results as JSON")
	flags.BoolVar(&a.noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(
		newEncCmd(a),
		newDecCmd(a),
		newDeriveCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads config and builds the logger and cipher for the command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	loader := config.NewLoader(a.configPath)
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return configError(err)
	}
	if a.jsonOutput {
		cfg.Output.Format = "json"
	}
	if a.noColor {
		cfg.Output.Color = false
		cfg.Log.Color = false
	}
	a.cfg = cfg

	if err := cfg.EnsureDirectories(); err != nil {
		return configError(err)
	}

	logger, err := events.NewLogger(&cfg.Log, a.stderr)
	if err != nil {
		return configError(fmt.Errorf("create logger: %w", err))
	}
	a.logger = logger

	fields := map[string]interface{}{"scheme": cfg.Crypto.Scheme, "format": cfg.Output.Format}
	if used := loader.ConfigFile(); used != "" {
		fields["file"] = used
	}
	logger.WithFields(fields).Info("loaded config")

	ctx := events.WithLogger(cmd.Context(), logger)
	ctx = events.WithOperation(ctx, cmd.Name())
	cmd.SetContext(ctx)

	a.deriver, err = crypto.SchemeFor(cfg.Crypto.Scheme, cfg.Crypto.Iterations)
	if err != nil {
		return configError(err)
	}
	a.normalize = normalizer(cfg.Crypto.Normalize)

	opts := []crypto.Option{crypto.WithKeyDeriver(a.deriver)}
	if a.normalize != nil {
		opts = append(opts, crypto.WithPasswordNormalizer(a.normalize))
	}
	a.provider = crypto.New(opts...)

	a.out = newPrinter(a.stdout, cfg.Output, cfg.Crypto.Scheme)

	return nil
}

// configError tags a setup failure so it reports CONFIG_ERROR.
func configError(err error) error {
	return &models.OperationError{Code: models.ErrCodeConfig, Op: "load config", Err: err}
}

func normalizer(form string) func(string) string {
	switch form {
	case "nfc":
		return norm.NFC.String
	case "nfkc":
		return norm.NFKC.String
	default:
		return nil
	}
}
