package commands

import (
	"fmt"
	"hash/crc32"

	"github.com/spf13/cobra"

	"github.com/haivivi/dynbuf/pkg/buf"
	"github.com/haivivi/dynbuf/pkg/cli"
)

var inspectRows int

// fileReport is the structured form for yaml/json output.
type fileReport struct {
	Path  string `json:"path" yaml:"path"`
	Size  int    `json:"size" yaml:"size"`
	CRC32 uint32 `json:"crc32" yaml:"crc32"`
	Hex   string `json:"hex,omitempty" yaml:"hex,omitempty"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show size, checksum and a hex dump of a file",
	Long: `Show size, checksum and a hex dump of a file.

With no --format flag a styled hex dump is printed to the terminal.
With --format yaml or json a structured report is emitted instead,
suitable for piping into other tools.

Examples:
  dynbuf inspect firmware.bin
  dynbuf inspect --rows 32 firmware.bin
  dynbuf inspect -f json firmware.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := buf.ReadFile(args[0])
		if err != nil {
			return err
		}
		defer b.Release()

		data := b.Bytes()
		sum := crc32.ChecksumIEEE(data)

		if formatRequested() {
			report := fileReport{
				Path:  args[0],
				Size:  b.Len(),
				CRC32: sum,
			}
			h := buf.ToHex(b, false)
			report.Hex = string(h.Bytes())
			h.Release()
			return cli.Output(report, cli.OutputOptions{Format: outputFormat()})
		}

		fmt.Println(cli.RenderField("File", args[0]))
		fmt.Println(cli.RenderField("Size", cli.FormatBytesInt(b.Len())))
		fmt.Println(cli.RenderField("CRC32", fmt.Sprintf("%08x", sum)))
		fmt.Println()
		fmt.Println(cli.RenderHexDump(data, inspectRows))
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectRows, "rows", 16, "maximum hex dump rows (0 for unlimited)")
	rootCmd.AddCommand(inspectCmd)
}
