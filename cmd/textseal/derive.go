package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheMichaelB/textseal/internal/crypto"
	"github.com/TheMichaelB/textseal/internal/events"
	"github.com/TheMichaelB/textseal/internal/models"
)

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <password> [header-hex]",
		Short: "Print the key derived from a password",
		Long: `Derive prints the AES key for a password as hex.

With the sha256 scheme the key depends on the password alone and no header
is accepted. With pbkdf2 the 16-byte envelope header (the salt) is required
and the IV is printed as well.`,
		Example: `  textseal derive secret
  textseal --scheme pbkdf2 derive secret 000102030405060708090a0b0c0d0e0f`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := events.FromContext(cmd.Context()).WithField("scheme", a.deriver.Name())

			key, iv, err := a.derive(args)
			if err != nil {
				logger.WithError(err).Warn("derive failed")
				if perr := a.out.printError("derive", err); perr != nil {
					return perr
				}
				if a.cfg.Output.StrictExit {
					return fmt.Errorf("%w: %w", errReported, models.NewOperationError("derive", err))
				}
				return nil
			}
			defer crypto.ClearBytes(key)

			if err := a.out.printSuccess("derive", "Key", hex.EncodeToString(key)); err != nil {
				return err
			}
			if iv != nil {
				return a.out.printSuccess("derive", "IV", hex.EncodeToString(iv))
			}
			return nil
		},
	}
}

func (a *app) derive(args []string) ([]byte, []byte, error) {
	password, err := a.readPassword(args[0])
	if err != nil {
		return nil, nil, err
	}
	if a.normalize != nil {
		password = a.normalize(password)
	}

	if a.deriver.Name() == crypto.SchemeSHA256 {
		if len(args) > 1 {
			return nil, nil, fmt.Errorf("%w: scheme %s takes no header", models.ErrInvalidInput, crypto.SchemeSHA256)
		}
		return crypto.DeriveKey(password), nil, nil
	}

	if len(args) < 2 {
		return nil, nil, fmt.Errorf("%w: scheme %s needs the envelope header", models.ErrInvalidInput, a.deriver.Name())
	}
	header, err := hex.DecodeString(args[1])
	if err != nil || len(header) != crypto.BlockSize {
		return nil, nil, fmt.Errorf("%w: header must be %d bytes of hex", models.ErrInvalidInput, crypto.BlockSize)
	}

	key, iv := a.deriver.Derive(password, header)
	return key, iv, nil
}
