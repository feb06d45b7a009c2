package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/quant"
)

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [values.json]",
		Short: "Pack a JSON array of int4 values into hex, two values per byte",
		Args:  cobra.MaximumNArgs(1),
		RunE:  PackHandler,
	}
}

func newUnpackCmd() *cobra.Command {
	unpackCmd := &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Unpack hex bytes into a JSON array of int4 values",
		Long: `Unpack hex bytes into a JSON array of int4 values.

The hex string is read from the argument, or from stdin when omitted. Use --count to
drop the padding value of an odd-length sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: UnpackHandler,
	}

	unpackCmd.Flags().IntP("count", "n", -1, "Number of values to keep (default all)")

	return unpackCmd
}

// PackHandler implements the pack command.
func PackHandler(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	var values []int8
	if err := json.Unmarshal(input, &values); err != nil {
		return fmt.Errorf("input must be a JSON array of integers: %w", err)
	}

	for i, v := range values {
		if v < quant.MinValue || v > quant.MaxValue {
			return fmt.Errorf("%w: value %d at index %d is outside [-8, 7]", errs.ErrInvalidArgument, v, i)
		}
	}

	return writeOutput(cmd, "", []byte(hex.EncodeToString(quant.Pack(values))+"\n"))
}

// UnpackHandler implements the unpack command.
func UnpackHandler(cmd *cobra.Command, args []string) error {
	var text []byte
	if len(args) == 1 {
		text = []byte(args[0])
	} else {
		input, err := readInput(cmd, "")
		if err != nil {
			return err
		}
		text = input
	}

	packed, err := hex.DecodeString(string(bytes.TrimSpace(text)))
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidArgument, err)
	}

	values := quant.Unpack(packed)
	if n, _ := cmd.Flags().GetInt("count"); n >= 0 {
		if values, err = quant.UnpackN(packed, n); err != nil {
			return err
		}
	}

	out, err := json.Marshal(values)
	if err != nil {
		return err
	}

	return writeOutput(cmd, "", append(out, '\n'))
}
