package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/files"
	"github.com/anytype-sdk/anytype-go/model"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "upload and download files over the streaming RPC channel",
}

var (
	fileUploadType  string
	fileUploadQuiet bool
)

var fileUploadCmd = &cobra.Command{
	Use:   "upload SPACE PATH",
	Short: "upload a local file into a space",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := files.Upload(c.Transport.RPC, args[0]).FromPath(args[1])
		if fileUploadType != "" {
			b = b.FileType(model.FileType(fileUploadType))
		}
		var progress chan files.Progress
		if !fileUploadQuiet {
			progress = make(chan files.Progress, 1)
			b = b.Progress(progress)
			go drainProgress(progress, "upload")
		}
		obj, err := b.Upload(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, obj)
	},
}

var (
	fileDownloadDir   string
	fileDownloadQuiet bool
)

var fileDownloadCmd = &cobra.Command{
	Use:   "download FILE_ID",
	Short: "download a file by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := files.Download(c.Transport.RPC, args[0])
		if fileDownloadDir != "" {
			b = b.ToPath(fileDownloadDir)
		} else {
			b = b.ToBytes()
		}
		var progress chan files.Progress
		if !fileDownloadQuiet {
			progress = make(chan files.Progress, 1)
			b = b.Progress(progress)
			go drainProgress(progress, "download")
		}
		result, err := b.Download(cmd.Context())
		if err != nil {
			return err
		}
		if fileDownloadDir == "" {
			return render(cmd, map[string]any{"name": result.Name, "mime": result.Mime, "bytes": len(result.Data)})
		}
		return render(cmd, map[string]any{"name": result.Name, "mime": result.Mime, "path": result.Path})
	},
}

func drainProgress(ch <-chan files.Progress, label string) {
	for p := range ch {
		if p.Total > 0 {
			fmt.Fprintf(os.Stderr, "%s: %d/%d bytes\n", label, p.Done, p.Total)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %d bytes\n", label, p.Done)
		}
	}
}

func init() {
	fileUploadCmd.Flags().StringVar(&fileUploadType, "type", "", "file type: file|image|video|audio|pdf|other")
	fileUploadCmd.Flags().BoolVar(&fileUploadQuiet, "quiet-progress", false, "suppress progress output on stderr")
	addOutputFlag(fileUploadCmd)

	fileDownloadCmd.Flags().StringVar(&fileDownloadDir, "dir", "", "write to this directory instead of buffering in memory")
	fileDownloadCmd.Flags().BoolVar(&fileDownloadQuiet, "quiet-progress", false, "suppress progress output on stderr")
	addOutputFlag(fileDownloadCmd)

	fileCmd.AddCommand(fileUploadCmd, fileDownloadCmd)
}
