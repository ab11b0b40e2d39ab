package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheMichaelB/textseal/internal/events"
	"github.com/TheMichaelB/textseal/internal/models"
	"github.com/TheMichaelB/textseal/internal/storage"
)

// fileOutput holds the per-command --output and --force flags.
type fileOutput struct {
	path  string
	force bool
}

func (o *fileOutput) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "output", "o", "",
		"Write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false,
		"Overwrite the output file if it exists")
}

func newEncCmd(a *app) *cobra.Command {
	out := &fileOutput{}
	cmd := &cobra.Command{
		Use:   "enc <password> <text>",
		Short: "Encrypt text with a password",
		Long: `Enc encrypts text and prints "Encrypted: <base64>".

Pass "-" as the password to be prompted for it, or "-" as the text to read
it from stdin. A password or text that starts with "-" must follow --,
otherwise it is read as a flag.`,
		Example: `  textseal enc secret "hello world"
  textseal enc -- -pw "-5 degrees"
  textseal --scheme pbkdf2 enc secret "hello world"
  textseal enc -o note.enc secret "hello world"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "enc", "Encrypted", args, out, a.provider.Encrypt)
		},
	}
	out.addFlags(cmd)
	return cmd
}

func newDecCmd(a *app) *cobra.Command {
	out := &fileOutput{}
	cmd := &cobra.Command{
		Use:   "dec <password> <text>",
		Short: "Decrypt text produced by enc",
		Long: `Dec decrypts base64(IV || ciphertext) and prints "Decrypted: <text>".

A wrong password usually fails with a padding or encoding error, but it is
indistinguishable from a corrupted input.`,
		Example: `  textseal dec secret AAECAwQFBgcICQoLDA0OD2AhZe5WNIj9nDLpIW9FeJc=
  textseal dec -- -pw <base64>`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "dec", "Decrypted", args, out, a.provider.Decrypt)
		},
	}
	out.addFlags(cmd)
	return cmd
}

// run resolves the arguments, applies op and prints the result line, or
// writes the result to out.path when set. Failures are printed too; they only
// become a non-zero exit with --strict.
func (a *app) run(cmd *cobra.Command, op, label string, args []string, out *fileOutput, fn func(text, password string) (string, error)) error {
	logger := events.FromContext(cmd.Context()).WithField("scheme", a.cfg.Crypto.Scheme)

	result, err := a.apply(op, args, fn)
	if err == nil && out.path != "" {
		err = writeResult(out, result)
	}
	if err != nil {
		logger.WithError(err).WithField("code", models.CodeFor(err)).Warn(op + " failed")

		if perr := a.out.printError(op, err); perr != nil {
			return fmt.Errorf("write output: %w", perr)
		}
		if a.cfg.Output.StrictExit {
			return fmt.Errorf("%w: %w", errReported, models.NewOperationError(op, err))
		}
		return nil
	}

	logger.WithField("output_len", len(result)).Debug(op + " complete")
	if out.path != "" {
		return a.out.printWritten(op, label, out.path)
	}
	return a.out.printSuccess(op, label, result)
}

func writeResult(out *fileOutput, result string) error {
	err := storage.WriteFile(out.path, []byte(result+"\n"), 0600, out.force)
	if errors.Is(err, storage.ErrExists) {
		return fmt.Errorf("%w: %w (use --force to overwrite)", models.ErrInvalidInput, err)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", out.path, err)
	}
	return nil
}

func (a *app) apply(op string, args []string, fn func(text, password string) (string, error)) (string, error) {
	password, err := a.readPassword(args[0])
	if err != nil {
		return "", err
	}

	text, err := a.readText(args[1], op == "enc")
	if err != nil {
		return "", err
	}

	return fn(text, password)
}
