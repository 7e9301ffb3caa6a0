package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/haivivi/dynbuf/pkg/cli"
	"github.com/haivivi/dynbuf/pkg/store"
)

var transferDir string

// transferStore picks the file store that export/import move blobs
// through: a local directory when --dir is given, otherwise the S3
// target from the config file.
func transferStore() (store.FileStore, error) {
	if transferDir != "" {
		return store.NewLocal(transferDir)
	}
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	if cfg.S3 == nil || cfg.S3.Bucket == "" {
		return nil, errors.New("no transfer target: configure s3 in the config file or pass --dir")
	}
	return store.NewS3(s3ClientFor(cfg.S3), cfg.S3.Bucket, cfg.S3.Prefix), nil
}

// s3ClientFor builds an S3 client for the configured target.
// Credentials are taken from the standard AWS environment variables;
// without them the client is anonymous, which suffices for public
// buckets.
func s3ClientFor(target *cli.S3Target) *s3.Client {
	opts := s3.Options{Region: target.Region}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if target.Endpoint != "" {
		opts.BaseEndpoint = aws.String(target.Endpoint)
		// S3-compatible stores generally route by path, not subdomain.
		opts.UsePathStyle = true
	}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		session := os.Getenv("AWS_SESSION_TOKEN")
		opts.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     key,
				SecretAccessKey: secret,
				SessionToken:    session,
			}, nil
		})
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}
	return s3.New(opts)
}

var blobExportCmd = &cobra.Command{
	Use:   "export <id> <path>",
	Short: "Copy a stored blob to a file store",
	Long: `Copy a stored blob to a file store.

The blob is fetched from the local blob store (checksum verified) and
saved under the given path in the transfer target: the S3 bucket from
the config file, or a local directory when --dir is given.

Examples:
  dynbuf blob export 6f1c... backups/firmware.bin
  dynbuf blob export 6f1c... firmware.bin --dir /mnt/exports`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, path := args[0], args[1]

		bs, err := openStore()
		if err != nil {
			return err
		}
		defer bs.Close()

		target, err := transferStore()
		if err != nil {
			return err
		}

		b, meta, err := bs.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		defer b.Release()

		if err := target.Save(cmd.Context(), path, b); err != nil {
			return err
		}
		if IsVerbose() {
			fmt.Printf("exported %s (%s) to %s\n", meta.ID, cli.FormatBytesInt(meta.Size), path)
		}
		return nil
	},
}

var blobImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Fetch an object from a file store into the blob store",
	Long: `Fetch an object from a file store into the blob store.

The object is loaded from the transfer target (the configured S3
bucket, or a local directory with --dir) and stored as a new blob with
a fresh ID. Labels can be attached the same way as with put.

Examples:
  dynbuf blob import backups/firmware.bin -l source=s3
  dynbuf blob import firmware.bin --dir /mnt/exports`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		labels, err := parseLabels(blobLabels)
		if err != nil {
			return err
		}

		source, err := transferStore()
		if err != nil {
			return err
		}

		b, err := source.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer b.Release()

		bs, err := openStore()
		if err != nil {
			return err
		}
		defer bs.Close()

		meta, err := bs.Put(cmd.Context(), b, labels)
		if err != nil {
			return err
		}
		return cli.Output(meta, cli.OutputOptions{Format: outputFormat()})
	},
}

func init() {
	blobExportCmd.Flags().StringVar(&transferDir, "dir", "", "use a local directory as the transfer target")
	blobImportCmd.Flags().StringVar(&transferDir, "dir", "", "use a local directory as the transfer target")
	blobImportCmd.Flags().StringArrayVarP(&blobLabels, "label", "l", nil, "label in key=value form (repeatable)")

	blobCmd.AddCommand(blobExportCmd)
	blobCmd.AddCommand(blobImportCmd)
}
