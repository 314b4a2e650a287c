package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/student/dicomstream/pkg/dicos"
	"github.com/student/dicomstream/pkg/util"
)

// NewInspectCmd creates the inspect cobra command, which prints the structure
// of a DICOS/DICOM file's data set without attempting to decompress pixel
// data - this package parses framing only (spec non-goal).
func NewInspectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect DICOS/DICOM file structure",
		Long:  "Parses a DICOS/DICOM file and prints its metadata and pixel data framing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath, _ := cmd.Flags().GetString("file")
			if filePath == "" && len(args) > 0 {
				filePath = args[0]
			}
			if filePath == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runInspect(filePath, cmd.Flags())
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "DICOS/DICOM file path to inspect")
	pf.Bool("fingerprint", false, "Print a content fingerprint for the parsed dataset")

	return cmd
}

func runInspect(filePath string, flags interface {
	GetBool(string) (bool, error)
}) error {
	ds, err := dicos.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	fmt.Printf("Total elements: %d\n\n", len(ds.Elements))

	fmt.Println("=== Key Metadata ===")
	fmt.Printf("Modality: %s\n", ds.Modality())
	fmt.Printf("Rows: %d\n", ds.Rows())
	fmt.Printf("Columns: %d\n", ds.Columns())
	fmt.Printf("BitsAllocated: %d\n", ds.BitsAllocated())
	fmt.Printf("PixelRepresentation: %d (0=unsigned, 1=signed)\n", ds.PixelRepresentation())
	fmt.Printf("NumberOfFrames: %d\n", ds.NumberOfFrames())

	syntax := ds.TransferSyntax()
	fmt.Printf("TransferSyntax: %s (%s)\n", syntax, syntax.Name())
	fmt.Printf("Encapsulated: %v\n", ds.IsEncapsulated())
	fmt.Println()

	pd, err := ds.GetPixelData()
	if err != nil {
		fmt.Printf("No pixel data: %v\n", err)
	} else {
		fmt.Println("=== Pixel Data ===")
		fmt.Printf("IsEncapsulated: %v\n", pd.IsEncapsulated)
		fmt.Printf("Frames: %d\n", len(pd.Frames))
		if len(pd.Offsets) > 0 {
			fmt.Printf("BOT Offsets: %v\n", pd.Offsets)
		}
		if pd.IsEncapsulated {
			for i, fr := range pd.Frames {
				if i >= 3 {
					break
				}
				fmt.Printf("Frame %d: %d compressed bytes\n", i, len(fr.CompressedData))
			}
		}
	}

	if fp, _ := flags.GetBool("fingerprint"); fp {
		fmt.Printf("\nFingerprint: %s\n", util.Md5ThenHex([]byte(ds.String())))
		fmt.Printf("UUID: %s\n", util.HashUUID(ds))
	}

	return nil
}
