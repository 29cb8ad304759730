package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/inkwell-io/cms-client/internal/constants"
	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewContentsCommand creates the contents command group
func NewContentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contents",
		Aliases: []string{"content"},
		Short:   "Manage content items",
		Long:    "List, create, update, publish, and delete content items of a schema",
	}

	cmd.AddCommand(newContentsListCommand())
	cmd.AddCommand(newContentsGetCommand())
	cmd.AddCommand(newContentsCreateCommand())
	cmd.AddCommand(newContentsUpdateCommand())
	cmd.AddCommand(newContentsPatchCommand())
	cmd.AddCommand(newContentsDeleteCommand())
	cmd.AddCommand(newContentsPublishCommand())
	cmd.AddCommand(newContentsUnpublishCommand())

	return cmd
}

// readContentData loads the content payload from --data or --data-file.
func readContentData(data, dataFile string) (cms.ContentData, error) {
	raw := []byte(data)

	if dataFile != "" {
		fileData, err := os.ReadFile(dataFile)
		if err != nil {
			return nil, fmt.Errorf("reading data file: %w", err)
		}

		raw = fileData
	}

	var payload cms.ContentData

	err := json.Unmarshal(raw, &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing content data: %w", err)
	}

	return payload, nil
}

func newContentsListCommand() *cobra.Command {
	var (
		schema string
		flags  queryFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content items",
		Long:  "List content items of a schema, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			query, err := flags.buildQuery()
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Contents().List(ctx, schema, query)
			if err != nil {
				return fmt.Errorf("failed to list contents: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No content items found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Status", "Version", "Modified", "Data")

				for _, item := range result.Items {
					_ = table.Append(item.ID, item.Status,
						strconv.FormatInt(item.Version, 10),
						item.LastModified.Format("2006-01-02 15:04"),
						fieldSummary(item.Data, 60))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Printf("\nShowing %d of %d content items\n", len(result.Items), result.Total)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")
	flags.register(cmd)

	return cmd
}

func newContentsGetCommand() *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "get CONTENT_ID",
		Short: "Get a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Get(ctx, schema, args[0])
			if err != nil {
				return fmt.Errorf("failed to get content: %w", err)
			}

			return renderContent(content)
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")

	return cmd
}

func renderContent(content *cms.Content) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(content)
	case OutputFormatYAML:
		return renderYAML(content)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", content.ID)
		_ = table.Append("Schema", content.SchemaName)
		_ = table.Append("Status", content.Status)
		_ = table.Append("Version", strconv.FormatInt(content.Version, 10))
		_ = table.Append("Created", content.Created.Format("2006-01-02 15:04:05"))
		_ = table.Append("Created By", content.CreatedBy)
		_ = table.Append("Modified", content.LastModified.Format("2006-01-02 15:04:05"))
		_ = table.Append("Modified By", content.LastModifiedBy)
		_ = table.Append("Data", fieldSummary(content.Data, 0))

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newContentsCreateCommand() *cobra.Command {
	var (
		schema   string
		data     string
		dataFile string
		publish  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a content item",
		Long:  "Create a new content item from a JSON data payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			payload, err := readContentData(data, dataFile)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Create(ctx, schema, payload)
			if err != nil {
				return fmt.Errorf("failed to create content: %w", err)
			}

			if publish {
				content, err = client.Contents().Publish(ctx, schema, content.ID)
				if err != nil {
					return fmt.Errorf("failed to publish content: %w", err)
				}
			}

			fmt.Printf("Successfully created content '%s' (status: %s)\n", content.ID, content.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")
	cmd.Flags().StringVarP(&data, "data", "d", "{}", "content data as JSON")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "file containing content data as JSON")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish the item after creating it")

	return cmd
}

func newContentsUpdateCommand() *cobra.Command {
	var (
		schema   string
		data     string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "update CONTENT_ID",
		Short: "Update a content item",
		Long:  "Replace the data of a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			payload, err := readContentData(data, dataFile)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Update(ctx, schema, args[0], payload)
			if err != nil {
				return fmt.Errorf("failed to update content: %w", err)
			}

			fmt.Printf("Successfully updated content '%s' (version: %d)\n", content.ID, content.Version)

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")
	cmd.Flags().StringVarP(&data, "data", "d", "{}", "content data as JSON")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "file containing content data as JSON")

	return cmd
}

func newContentsPatchCommand() *cobra.Command {
	var (
		schema   string
		data     string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "patch CONTENT_ID",
		Short: "Patch a content item",
		Long:  "Merge the given fields into a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			payload, err := readContentData(data, dataFile)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Patch(ctx, schema, args[0], payload)
			if err != nil {
				return fmt.Errorf("failed to patch content: %w", err)
			}

			fmt.Printf("Successfully patched content '%s' (version: %d)\n", content.ID, content.Version)

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")
	cmd.Flags().StringVarP(&data, "data", "d", "{}", "content data as JSON")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "file containing content data as JSON")

	return cmd
}

func newContentsDeleteCommand() *cobra.Command {
	var (
		schema string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "delete CONTENT_ID",
		Short: "Delete a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			if !force {
				fmt.Printf("Really delete content '%s'? (y/N): ", args[0])

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

			err = client.Contents().Delete(ctx, schema, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete content: %w", err)
			}

			fmt.Printf("Successfully deleted content '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newContentsPublishCommand() *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "publish CONTENT_ID",
		Short: "Publish a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Publish(ctx, schema, args[0])
			if err != nil {
				return fmt.Errorf("failed to publish content: %w", err)
			}

			fmt.Printf("Successfully published content '%s'\n", content.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")

	return cmd
}

func newContentsUnpublishCommand() *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "unpublish CONTENT_ID",
		Short: "Unpublish a content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schema == "" {
				return constants.ErrSchemaRequired
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			content, err := client.Contents().Unpublish(ctx, schema, args[0])
			if err != nil {
				return fmt.Errorf("failed to unpublish content: %w", err)
			}

			fmt.Printf("Successfully unpublished content '%s'\n", content.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "schema name (required)")

	return cmd
}
