package main

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4"
	"github.com/arloliu/qint4/block"
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/internal/logger"
)

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode [input.json]",
		Short: "Quantize a JSON float array into an encoded block",
		Long: `Quantize a JSON float array into an encoded block.

With --set the input must be a JSON object mapping names to float arrays, and the
output is a block set holding one block per name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: EncodeHandler,
	}

	encodeCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	encodeCmd.Flags().StringP("method", "m", "minmax", "Scale method: minmax or absmax")
	encodeCmd.Flags().StringP("compression", "c", "none", "Payload compression: none, zstd, s2 or lz4")
	encodeCmd.Flags().Bool("big-endian", false, "Write big-endian headers")
	encodeCmd.Flags().Bool("set", false, "Encode a JSON object of named arrays as a block set")
	encodeCmd.Flags().Int("concurrency", 0, "Blocks encoded in parallel with --set (default GOMAXPROCS)")

	return encodeCmd
}

// EncodeHandler implements the encode command.
func EncodeHandler(cmd *cobra.Command, args []string) error {
	log := logger.FromContext(cmd.Context())

	blockOpts, err := blockOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	var data []byte
	if asSet, _ := cmd.Flags().GetBool("set"); asSet {
		data, err = encodeSet(cmd, input, blockOpts)
	} else {
		data, err = encodeBlock(input, blockOpts)
	}
	if err != nil {
		return err
	}

	log.Info("encoded", "input_bytes", len(input), "output_bytes", len(data))

	return writeOutput(cmd, output, data)
}

func blockOptionsFromFlags(cmd *cobra.Command) ([]block.EncoderOption, error) {
	method, _ := cmd.Flags().GetString("method")
	compName, _ := cmd.Flags().GetString("compression")
	bigEndian, _ := cmd.Flags().GetBool("big-endian")

	comp, err := format.ParseCompression(compName)
	if err != nil {
		return nil, err
	}

	opts := []block.EncoderOption{
		block.WithScaleMethodName(method),
		block.WithCompression(comp),
	}
	if bigEndian {
		opts = append(opts, block.WithBigEndian())
	}

	return opts, nil
}

func encodeBlock(input []byte, opts []block.EncoderOption) ([]byte, error) {
	var samples []float32
	if err := json.Unmarshal(input, &samples); err != nil {
		return nil, fmt.Errorf("input must be a JSON array of numbers: %w", err)
	}

	encoder, err := block.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(samples)
}

func encodeSet(cmd *cobra.Command, input []byte, opts []block.EncoderOption) ([]byte, error) {
	log := logger.FromContext(cmd.Context())

	var named map[string][]float32
	if err := json.Unmarshal(input, &named); err != nil {
		return nil, fmt.Errorf("input must be a JSON object of number arrays: %w", err)
	}

	setOpts := []block.SetEncoderOption{block.WithBlockOptions(opts...)}
	if n, _ := cmd.Flags().GetInt("concurrency"); n != 0 {
		setOpts = append(setOpts, block.WithConcurrency(n))
	}

	encoder, err := block.NewSetEncoder(setOpts...)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := encoder.Add(name, named[name]); err != nil {
			return nil, err
		}
		log.Debug("added block", "name", name, "id", formatID(qint4.BlockID(name)), "count", len(named[name]))
	}
	log.Debug("encoding block set", "blocks", encoder.Len(), "names", encoder.Names())

	return encoder.Finish()
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
