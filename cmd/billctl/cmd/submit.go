package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"billed/internal/client"

	"github.com/spf13/cobra"
)

var submitForm = struct {
	file       string
	billType   string
	name       string
	date       string
	amount     string
	vat        string
	pct        string
	commentary string
}{}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Upload a receipt and submit a new expense bill",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newClientEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		f, err := os.Open(submitForm.file)
		if err != nil {
			return fmt.Errorf("cannot open receipt: %w", err)
		}
		defer f.Close()

		newBill := &client.NewBill{
			Store:      env.store,
			Session:    env.session,
			OnNavigate: env.nav.Go,
			Alerter: client.AlertFunc(func(message string) {
				fmt.Fprintln(os.Stderr, message)
			}),
			Logger: env.logger,
		}

		input := &client.FileInput{
			Value: filepath.Base(submitForm.file),
			File: &client.ReceiptFile{
				Name:        filepath.Base(submitForm.file),
				ContentType: mime.TypeByExtension(filepath.Ext(submitForm.file)),
				Content:     f,
			},
		}

		ctx := cmd.Context()
		if err := newBill.HandleChangeFile(ctx, input); err != nil {
			return err
		}

		form := &client.BillForm{
			Type:       submitForm.billType,
			Name:       submitForm.name,
			Date:       submitForm.date,
			Amount:     submitForm.amount,
			VAT:        submitForm.vat,
			Pct:        submitForm.pct,
			Commentary: submitForm.commentary,
		}
		if err := newBill.HandleSubmit(ctx, form); err != nil {
			return err
		}

		_, fileURL, fileName := newBill.UploadSession()
		fmt.Printf("Bill submitted: %s (%s)\n", fileName, fileURL)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitForm.file, "file", "", "receipt image (jpg, jpeg or png)")
	submitCmd.Flags().StringVar(&submitForm.billType, "type", "", "expense category")
	submitCmd.Flags().StringVar(&submitForm.name, "name", "", "expense label")
	submitCmd.Flags().StringVar(&submitForm.date, "date", "", "expense date (YYYY-MM-DD)")
	submitCmd.Flags().StringVar(&submitForm.amount, "amount", "", "amount, whole currency units")
	submitCmd.Flags().StringVar(&submitForm.vat, "vat", "", "VAT amount")
	submitCmd.Flags().StringVar(&submitForm.pct, "pct", "", "VAT percentage (default 20)")
	submitCmd.Flags().StringVar(&submitForm.commentary, "commentary", "", "free-text comment")
	submitCmd.MarkFlagRequired("file")
	submitCmd.MarkFlagRequired("type")
	submitCmd.MarkFlagRequired("name")
	submitCmd.MarkFlagRequired("date")
	submitCmd.MarkFlagRequired("amount")
	submitCmd.MarkFlagRequired("vat")
	rootCmd.AddCommand(submitCmd)
}
