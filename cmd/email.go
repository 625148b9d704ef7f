/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/acantor/spotify-net-tools/internal/analysis"
)

var emailLimit int
var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Emails the collaboration report",
	Long:  `Generates the YAML report and sends it to the given address via SendGrid.`,
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := emailReport(args[0], emailLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	emailCmd.Flags().IntVarP(&emailLimit, "limit", "n", analysis.DefaultLimit, "size of the initial top-by-popularity selection")

	var from string
	emailCmd.Flags().StringVar(&from, "from", "", "From email address")
	viper.BindPFlag("from", emailCmd.Flags().Lookup("from"))

	var dryRun bool
	emailCmd.Flags().BoolVar(&dryRun, "dry_run", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))
}

func emailReport(to string, limit int) error {
	report, err := generateReport(limit)
	if err != nil {
		return err
	}

	body := new(bytes.Buffer)
	encoder := yaml.NewEncoder(body)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	subject := fmt.Sprintf("Collaboration report for %s", time.Now().Format("2006-01-02"))

	if viper.GetBool("dryRun") {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, body.String())
		return nil
	}

	if viper.GetString("sendgrid_api_key") == "" {
		return fmt.Errorf("sendgrid_api_key must be set in order to send emails")
	}

	from := mail.NewEmail("spotify-net-tools", viper.GetString("from"))
	recipient := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(from, subject, recipient, body.String(), "<pre>"+body.String()+"</pre>")
	client := sendgrid.NewSendClient(viper.GetString("sendgrid_api_key"))
	if _, err := client.Send(message); err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	return nil
}
