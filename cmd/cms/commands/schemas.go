package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSchemasCommand creates the schemas command group
func NewSchemasCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schemas",
		Aliases: []string{"schema"},
		Short:   "Inspect content schemas",
		Long:    "List and inspect the content schemas published on the backend",
	}

	cmd.AddCommand(newSchemasListCommand())
	cmd.AddCommand(newSchemasGetCommand())

	return cmd
}

func newSchemasListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Schemas().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list schemas: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if len(result.Items) == 0 {
					fmt.Println("No schemas found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Label", "Published", "Fields")

				for _, schema := range result.Items {
					_ = table.Append(schema.Name, schema.Label,
						strconv.FormatBool(schema.IsPublished),
						strconv.Itoa(len(schema.Fields)))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newSchemasGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SCHEMA_NAME",
		Short: "Get a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			schema, err := client.Schemas().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get schema: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(schema)
			case OutputFormatYAML:
				return renderYAML(schema)
			default:
				fmt.Printf("Schema: %s (%s)\n\n", schema.Name, schema.Label)

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Type", "Required", "Listed")

				for _, field := range schema.Fields {
					_ = table.Append(field.Name, field.Type,
						strconv.FormatBool(field.IsRequired),
						strconv.FormatBool(field.IsListed))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
