package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/arloliu/qint4/section"
)

// readInput reads the whole of path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// writeJSON encodes v as indented JSON followed by a newline.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	return writeOutput(cmd, path, buf.Bytes())
}

// isBlockSet reports whether data starts with a block set header rather than a block header.
func isBlockSet(data []byte) bool {
	if len(data) < 2 {
		return false
	}

	options := binary.LittleEndian.Uint16(data[0:2])

	return options&section.MagicNumberMask == section.MagicSetV1Opt
}

func formatID(id uint64) string {
	return fmt.Sprintf("0x%016x", id)
}
