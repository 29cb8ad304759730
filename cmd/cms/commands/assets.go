package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAssetsCommand creates the assets command group
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage assets",
		Long:    "List, inspect, update, and delete uploaded assets",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsUpdateCommand())
	cmd.AddCommand(newAssetsDeleteCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := flags.buildQuery()
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Assets().List(ctx, query)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No assets found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "File Name", "Type", "Size", "Tags")

				for _, asset := range result.Items {
					_ = table.Append(asset.ID, asset.FileName, asset.MimeType,
						strconv.FormatInt(asset.FileSize, 10),
						strings.Join(asset.Tags, ", "))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Printf("\nShowing %d of %d assets\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newAssetsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ASSET_ID",
		Short: "Get an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			asset, err := client.Assets().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get asset: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(asset)
			case OutputFormatYAML:
				return renderYAML(asset)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", asset.ID)
				_ = table.Append("File Name", asset.FileName)
				_ = table.Append("MIME Type", asset.MimeType)
				_ = table.Append("Size", strconv.FormatInt(asset.FileSize, 10))
				_ = table.Append("Slug", asset.Slug)
				_ = table.Append("Tags", strings.Join(asset.Tags, ", "))
				_ = table.Append("Version", strconv.FormatInt(asset.Version, 10))
				_ = table.Append("Created", asset.Created.Format("2006-01-02 15:04:05"))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newAssetsUpdateCommand() *cobra.Command {
	var (
		fileName string
		slug     string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "update ASSET_ID",
		Short: "Update asset metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			request := &cms.AssetUpdateRequest{
				FileName: fileName,
				Slug:     slug,
				Tags:     tags,
			}

			asset, err := client.Assets().Update(ctx, args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update asset: %w", err)
			}

			fmt.Printf("Successfully updated asset '%s'\n", asset.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&fileName, "file-name", "", "new file name")
	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags to apply")

	return cmd
}

func newAssetsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ASSET_ID",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete asset '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.Assets().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete asset: %w", err)
			}

			fmt.Printf("Successfully deleted asset '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
