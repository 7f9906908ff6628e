package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bufkit/pkg/mmspan"
	"github.com/joshuapare/bufkit/pkg/sbuf"
)

var (
	dumpOffset int
	dumpLength int
	dumpU16    bool
	dumpU32    bool
	dumpU64    bool
	dumpF32    bool
	dumpBE     bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Start offset into the file")
	cmd.Flags().IntVar(&dumpLength, "length", 0, "Number of bytes to dump (0 = to end of file)")
	cmd.Flags().BoolVar(&dumpU16, "u16", false, "Decode as a stream of 16-bit integers")
	cmd.Flags().BoolVar(&dumpU32, "u32", false, "Decode as a stream of 32-bit integers")
	cmd.Flags().BoolVar(&dumpU64, "u64", false, "Decode as a stream of 64-bit integers")
	cmd.Flags().BoolVar(&dumpF32, "f32", false, "Decode as a stream of 32-bit floats")
	cmd.Flags().BoolVar(&dumpBE, "be", false, "Big-endian integer decode")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump or typed decode of a binary file",
		Long: `The dump command maps a file and walks it with a bounds-checked cursor.
By default it prints canonical hex rows with an ASCII gutter. With a typed
flag it decodes the window as a stream of fixed-width values instead.

Example:
  bufctl dump frame.bin
  bufctl dump frame.bin --offset 16 --length 64
  bufctl dump frame.bin --u32 --be
  bufctl dump frame.bin --f32 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	printVerbose("Mapping file: %s\n", path)
	reg, err := mmspan.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer reg.Close()

	length := dumpLength
	if length == 0 && dumpOffset <= reg.Len() {
		length = reg.Len() - dumpOffset
	}
	window, ok := reg.Slice(dumpOffset, length)
	if !ok {
		return fmt.Errorf(
			"window %d+%d falls outside the %d-byte file",
			dumpOffset, length, reg.Len(),
		)
	}
	printVerbose("Window: offset=%d length=%d\n", dumpOffset, len(window))

	mode, width, err := dumpMode()
	if err != nil {
		return err
	}
	if mode == "" {
		return dumpHex(path, window)
	}
	return dumpTyped(path, mode, width, window)
}

// dumpMode resolves the typed decode flags to a single mode and value width.
func dumpMode() (string, int, error) {
	type m struct {
		set   bool
		name  string
		width int
	}
	modes := []m{
		{dumpU16, "u16", 2},
		{dumpU32, "u32", 4},
		{dumpU64, "u64", 8},
		{dumpF32, "f32", 4},
	}
	name, width := "", 0
	for _, mm := range modes {
		if !mm.set {
			continue
		}
		if name != "" {
			return "", 0, fmt.Errorf("choose at most one of --u16, --u32, --u64, --f32")
		}
		name, width = mm.name, mm.width
	}
	return name, width, nil
}

func dumpHex(path string, window []byte) error {
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"offset": dumpOffset,
			"length": len(window),
			"hex":    hex.EncodeToString(window),
		})
	}
	fmt.Print(formatHexRows(window, dumpOffset))
	return nil
}

func dumpTyped(path, mode string, width int, window []byte) error {
	type typedValue struct {
		Offset int         `json:"offset"`
		Value  interface{} `json:"value"`
	}

	r := sbuf.NewReader(window)
	var values []typedValue
	for r.HasRemaining(width) {
		off := dumpOffset + r.Pos()
		var v interface{}
		switch mode {
		case "u16":
			if dumpBE {
				v = r.U16BE()
			} else {
				v = r.U16()
			}
		case "u32":
			if dumpBE {
				v = r.U32BE()
			} else {
				v = r.U32()
			}
		case "u64":
			if dumpBE {
				v = r.U64BE()
			} else {
				v = r.U64()
			}
		case "f32":
			v = r.F32()
		}
		values = append(values, typedValue{Offset: off, Value: v})
	}
	if rem := r.BytesRemaining(); rem > 0 {
		printVerbose("%d trailing byte(s) shorter than a %s value\n", rem, mode)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":   path,
			"mode":   mode,
			"offset": dumpOffset,
			"length": len(window),
			"values": values,
		})
	}
	for _, tv := range values {
		if mode == "f32" {
			fmt.Printf("%08x  %g\n", tv.Offset, tv.Value)
		} else {
			fmt.Printf("%08x  %d (0x%x)\n", tv.Offset, tv.Value, tv.Value)
		}
	}
	return nil
}

// formatHexRows renders data as canonical 16-byte hex rows with an ASCII
// gutter, offsets counted from base.
func formatHexRows(data []byte, base int) string {
	var b strings.Builder
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		fmt.Fprintf(&b, "%08x  ", base+i)
		for j := 0; j < 16; j++ {
			if j < len(row) {
				fmt.Fprintf(&b, "%02x ", row[j])
			} else {
				b.WriteString("   ")
			}
			if j == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range row {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteString("|\n")
	}
	return b.String()
}
