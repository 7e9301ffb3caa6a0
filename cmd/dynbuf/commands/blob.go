package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/dynbuf/pkg/blobstore"
	"github.com/haivivi/dynbuf/pkg/buf"
	"github.com/haivivi/dynbuf/pkg/cli"
)

var (
	blobLabels  []string
	blobOutFile string
)

var blobCmd = &cobra.Command{
	Use:   "blob",
	Short: "Store and retrieve blobs in the local store",
	Long: `Store and retrieve blobs in the local store.

Blobs are kept in a BadgerDB database under the configured store
directory. Every blob gets a generated ID and a CRC32 checksum that
is verified on every read. export and import move blobs between the
store and a configured transfer target (S3 or a local directory).

Examples:
  dynbuf blob put firmware.bin -l env=prod -l version=1.2.0
  dynbuf blob get 6f1c... -o firmware.bin
  dynbuf blob list
  dynbuf blob export 6f1c... backups/firmware.bin
  dynbuf blob delete 6f1c...`,
}

func openStore() (*blobstore.Badger, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return blobstore.NewBadger(blobstore.BadgerOptions{Dir: cfg.ResolveStoreDir()})
}

func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	labels := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid label %q, expected key=value", p)
		}
		labels[k] = v
	}
	return labels, nil
}

var blobPutCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Store a file as a blob",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, err := parseLabels(blobLabels)
		if err != nil {
			return err
		}

		b, err := buf.ReadFile(args[0])
		if err != nil {
			return err
		}
		defer b.Release()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		meta, err := store.Put(cmd.Context(), b, labels)
		if err != nil {
			return err
		}
		return cli.Output(meta, cli.OutputOptions{Format: outputFormat()})
	},
}

var blobGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a blob by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		b, meta, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer b.Release()

		if blobOutFile == "" {
			return fmt.Errorf("blob %s is %s, use -o to write it to a file",
				meta.ID, cli.FormatBytesInt(meta.Size))
		}
		if err := b.WriteFile(blobOutFile, 0o644); err != nil {
			return err
		}
		if IsVerbose() {
			fmt.Printf("wrote %s (%s) to %s\n", meta.ID, cli.FormatBytesInt(meta.Size), blobOutFile)
		}
		return nil
	},
}

var blobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored blobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var metas []blobstore.Meta
		for meta, err := range store.List(cmd.Context()) {
			if err != nil {
				return err
			}
			metas = append(metas, meta)
		}
		return cli.Output(metas, cli.OutputOptions{Format: outputFormat()})
	},
}

var blobDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a blob by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		if IsVerbose() {
			fmt.Printf("deleted %s\n", args[0])
		}
		return nil
	},
}

var blobStatCmd = &cobra.Command{
	Use:   "stat <id>",
	Short: "Show a blob's metadata without fetching its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		meta, err := store.Stat(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return cli.Output(meta, cli.OutputOptions{Format: outputFormat()})
	},
}

func init() {
	blobPutCmd.Flags().StringArrayVarP(&blobLabels, "label", "l", nil, "label in key=value form (repeatable)")
	blobGetCmd.Flags().StringVarP(&blobOutFile, "output", "o", "", "write blob contents to file")

	blobCmd.AddCommand(blobPutCmd)
	blobCmd.AddCommand(blobGetCmd)
	blobCmd.AddCommand(blobListCmd)
	blobCmd.AddCommand(blobDeleteCmd)
	blobCmd.AddCommand(blobStatCmd)
	rootCmd.AddCommand(blobCmd)
}
