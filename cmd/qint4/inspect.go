package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4/block"
	"github.com/arloliu/qint4/section"
)

// blockInfo is the inspect output for one block header.
type blockInfo struct {
	ID          string  `json:"id,omitempty"`
	Method      string  `json:"method"`
	Compression string  `json:"compression"`
	Endianness  string  `json:"endianness"`
	Count       uint32  `json:"count"`
	Scale       float32 `json:"scale"`
	ZeroPoint   float32 `json:"zero_point"`
	PayloadSize uint32  `json:"payload_size"`
	Checksum    string  `json:"checksum"`
}

// setInfo is the inspect output for a block set.
type setInfo struct {
	Endianness string      `json:"endianness"`
	BlockCount uint32      `json:"block_count"`
	Blocks     []blockInfo `json:"blocks"`
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [block-file]",
		Short: "Print the headers of a block or block set as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  InspectHandler,
	}
}

// InspectHandler implements the inspect command. Payloads are not decompressed or verified.
func InspectHandler(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, firstArg(args))
	if err != nil {
		return err
	}

	if !isBlockSet(data) {
		decoder, err := block.NewDecoder(data)
		if err != nil {
			return err
		}

		return writeJSON(cmd, "", newBlockInfo("", decoder.Header()))
	}

	decoder, err := block.NewSetDecoder(data)
	if err != nil {
		return err
	}

	header := decoder.Header()
	info := setInfo{
		Endianness: endianness(header.IsLittleEndian()),
		BlockCount: header.BlockCount,
		Blocks:     make([]blockInfo, 0, decoder.Len()),
	}
	for _, id := range decoder.IDs() {
		h, err := decoder.HeaderByID(id)
		if err != nil {
			return err
		}
		info.Blocks = append(info.Blocks, newBlockInfo(formatID(id), h))
	}

	return writeJSON(cmd, "", info)
}

func newBlockInfo(id string, h section.BlockHeader) blockInfo {
	return blockInfo{
		ID:          id,
		Method:      h.Flag.Method().String(),
		Compression: h.Flag.Compression().String(),
		Endianness:  endianness(h.Flag.IsLittleEndian()),
		Count:       h.Count,
		Scale:       h.Scale,
		ZeroPoint:   h.ZeroPoint,
		PayloadSize: h.PayloadSize,
		Checksum:    formatID(h.Checksum),
	}
}

func endianness(little bool) string {
	if little {
		return "little"
	}

	return "big"
}
