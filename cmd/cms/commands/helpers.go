package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkwell-io/cms-client/internal/constants"
	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/inkwell-io/cms-client/pkg/cmsclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// createClient builds an API client from the effective configuration. The
// --api flag wins over the stored config, which wins over CMS_API.
func createClient(cmd *cobra.Command) (cms.Client, error) {
	if flagAPI := cmd.Flag("api").Value.String(); flagAPI != "" {
		viper.Set("api", flagAPI)
	}

	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, constants.ErrNoEndpointConfigured
	}

	config := &cms.Config{
		Endpoint:     endpoint,
		AccessToken:  viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		Username:     viper.GetString("username"),
		Password:     viper.GetString("password"),
		Debug:        viper.GetBool("verbose"),
	}

	client, err := cmsclient.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// queryFlags holds the shared listing flags.
type queryFlags struct {
	filterEq []string
	filter   string
	search   string
	orderBy  string
	desc     bool
	top      int
	skip     int
}

// register adds the listing flags to a command.
func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.filterEq, "filter-eq", nil, "equality filter (field=value, repeatable)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "raw filter expression")
	cmd.Flags().StringVar(&f.search, "search", "", "full-text search term")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "sort field")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&f.top, "top", 0, "maximum number of items to return")
	cmd.Flags().IntVar(&f.skip, "skip", 0, "number of items to skip")
}

// buildQuery translates the listing flags into a query. Returns nil when no
// flag was set so listing commands can omit the query string entirely.
func (f *queryFlags) buildQuery() (*cms.Query, error) {
	query := cms.NewQuery()
	used := false

	for _, pair := range f.filterEq {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFilterFlag, pair)
		}

		query.Equals(field, value)

		used = true
	}

	if f.filter != "" {
		query.Raw(f.filter)

		used = true
	}

	if f.search != "" {
		query.Search(f.search)

		used = true
	}

	if f.orderBy != "" {
		direction := cms.SortAscending
		if f.desc {
			direction = cms.SortDescending
		}

		query.OrderBy(f.orderBy, direction)

		used = true
	}

	if f.top > 0 {
		query.Top(f.top)

		used = true
	}

	if f.skip > 0 {
		query.Skip(f.skip)

		used = true
	}

	if !used {
		return nil, nil //nolint:nilnil // nil query means "no query string"
	}

	return query, nil
}

// renderJSON writes data as indented JSON to stdout.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data as YAML to stdout.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// fieldSummary flattens a content data object into a short display string.
func fieldSummary(data map[string]interface{}, maxLen int) string {
	if len(data) == 0 {
		return ""
	}

	parts := make([]string, 0, len(data))
	for key, value := range data {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}

	summary := strings.Join(parts, ", ")
	if maxLen > 0 && len(summary) > maxLen {
		if maxLen <= 3 {
			return summary[:maxLen]
		}

		summary = summary[:maxLen-3] + "..."
	}

	return summary
}

// saveConfig persists the current viper settings to the config file.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".cms")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
