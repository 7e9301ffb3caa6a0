package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/dynbuf/pkg/buf"
)

var (
	hexUppercase bool
	hexOutFile   string
)

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Hex encode/decode files and strings",
}

var hexEncodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Hex encode a file's contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buf.ReadFile(args[0])
		if err != nil {
			return err
		}
		defer b.Release()

		h := buf.ToHex(b, hexUppercase)
		defer h.Release()

		if hexOutFile != "" {
			return h.WriteFile(hexOutFile, 0o644)
		}
		fmt.Println(string(h.Bytes()))
		return nil
	},
}

var hexDecodeCmd = &cobra.Command{
	Use:   "decode <hex-string|@file>",
	Short: "Decode hex text into raw bytes",
	Long: `Decode hex text into raw bytes.

The argument is either a literal hex string or, with an @ prefix,
a file whose contents are hex text. Odd-length or non-hex input is
rejected without producing partial output.

Examples:
  dynbuf hex decode deadbeef -o out.bin
  dynbuf hex decode @dump.hex -o out.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		if len(text) > 0 && text[0] == '@' {
			data, err := os.ReadFile(text[1:])
			if err != nil {
				return err
			}
			text = string(data)
		}

		b, err := buf.FromHex(trimHexWhitespace(text))
		if err != nil {
			return err
		}
		defer b.Release()

		if hexOutFile != "" {
			return b.WriteFile(hexOutFile, 0o644)
		}
		_, err = b.WriteTo(os.Stdout)
		return err
	},
}

// trimHexWhitespace strips spaces and line breaks so hex dumps copied
// from terminals decode cleanly.
func trimHexWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func init() {
	hexEncodeCmd.Flags().BoolVarP(&hexUppercase, "upper", "u", false, "use uppercase hex digits")
	hexEncodeCmd.Flags().StringVarP(&hexOutFile, "output", "o", "", "write output to file instead of stdout")
	hexDecodeCmd.Flags().StringVarP(&hexOutFile, "output", "o", "", "write output to file instead of stdout")

	hexCmd.AddCommand(hexEncodeCmd)
	hexCmd.AddCommand(hexDecodeCmd)
	rootCmd.AddCommand(hexCmd)
}
