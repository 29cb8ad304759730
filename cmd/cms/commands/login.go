package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/inkwell-io/cms-client/internal/auth"
	"github.com/inkwell-io/cms-client/internal/constants"
	"github.com/inkwell-io/cms-client/pkg/cms"
	"github.com/inkwell-io/cms-client/pkg/cmsclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		username     string
		password     string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the Inkwell API",
		Long:  "Authenticate with an Inkwell API gateway and store the obtained token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return constants.ErrNoEndpointConfigured
			}

			config := &cms.Config{
				Endpoint: apiEndpoint,
			}

			if clientID != "" && clientSecret != "" {
				config.ClientID = clientID
				config.ClientSecret = clientSecret
			} else {
				if username == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Username: ")
					username, _ = reader.ReadString('\n')
					username = strings.TrimSpace(username)
				}

				if password == "" {
					fmt.Print("Password: ")
					bytePassword, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read password: %w", err)
					}
					password = string(bytePassword)
					fmt.Println()
				}

				config.Username = username
				config.Password = password
			}

			// Create client. This normalizes the endpoint and discovers the
			// token URL from the gateway root.
			client, err := cmsclient.New(context.Background(), config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test connection by getting info
			ctx := context.Background()
			info, err := client.GetInfo(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			// Obtain a token directly so it can be persisted. The discovered
			// token URL is left on the config by cmsclient.New.
			tokenManager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
				TokenURL:     config.TokenURL,
				ClientID:     config.ClientID,
				ClientSecret: config.ClientSecret,
				Username:     config.Username,
				Password:     config.Password,
			})

			token, err := tokenManager.GetToken(ctx)
			if err != nil {
				return fmt.Errorf("failed to obtain token: %w", err)
			}

			// Store tokens only, never passwords
			viper.Set("api", config.Endpoint)
			viper.Set("token", token)
			viper.Set("username", username)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s\n", config.Endpoint)
			fmt.Printf("API version: %s\n", info.Version)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API gateway endpoint URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username for authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the Inkwell API",
		Long:  "Clear stored authentication credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")
			viper.Set("username", "")
			viper.Set("client_id", "")
			viper.Set("client_secret", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")
			return nil
		},
	}
}
