package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4/block"
	"github.com/arloliu/qint4/internal/logger"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [block-file]",
		Short: "Decode a block or block set into JSON",
		Long: `Decode a block or block set into JSON.

A block decodes to an array of dequantized floats. A block set decodes to an object
keyed by block ID, since sets store name hashes rather than names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: DecodeHandler,
	}

	decodeCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	decodeCmd.Flags().Bool("raw", false, "Output quantized int4 values instead of dequantized floats")

	return decodeCmd
}

// DecodeHandler implements the decode command.
func DecodeHandler(cmd *cobra.Command, args []string) error {
	log := logger.FromContext(cmd.Context())

	data, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")
	output, _ := cmd.Flags().GetString("output")

	if isBlockSet(data) {
		decoder, err := block.NewSetDecoder(data)
		if err != nil {
			return err
		}

		blocks, err := decoder.DecodeAll()
		if err != nil {
			return err
		}
		log.Debug("decoded block set", "blocks", len(blocks))

		result := make(map[string]any, len(blocks))
		for id, b := range blocks {
			result[formatID(id)] = blockValues(b, raw)
		}

		return writeJSON(cmd, output, result)
	}

	b, err := block.Decode(data)
	if err != nil {
		return err
	}
	log.Debug("decoded block", "count", b.Len(), "method", b.Method.String(), "scale", b.Scale)

	return writeJSON(cmd, output, blockValues(b, raw))
}

func blockValues(b block.Block, raw bool) any {
	if raw {
		return b.Quantized
	}

	return b.Dequantize()
}
