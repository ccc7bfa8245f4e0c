package services

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.EmailConfig
	send   func(params *resend.SendEmailRequest) error

	// tracks alerts still being sent
	pending sync.WaitGroup
}

func NewEmailService(logger *gecho.Logger, cfg *structs.EmailConfig) *EmailService {
	es := &EmailService{
		logger: logger,
		cfg:    cfg,
	}

	if cfg.ApiKey != "" {
		client := resend.NewClient(cfg.ApiKey)
		es.send = func(params *resend.SendEmailRequest) error {
			_, err := client.Emails.Send(params)
			return err
		}
	}

	return es
}

// Enabled reports whether alerts can be delivered at all.
func (es *EmailService) Enabled() bool {
	return es.send != nil && len(es.cfg.AlertRecipients) > 0
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.send == nil {
		return fmt.Errorf("email delivery is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	if err := es.send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// LowStockVariants returns the variants at or below the alert threshold.
func (es *EmailService) LowStockVariants(product structs.Product) []structs.ProductVariant {
	var low []structs.ProductVariant
	for _, v := range product.Variants {
		if v.Stock <= es.cfg.LowStockThreshold {
			low = append(low, v)
		}
	}
	return low
}

// NotifyLowStock emails the alert recipients in the background when the saved
// product has variants running low. Failures are only logged.
func (es *EmailService) NotifyLowStock(product structs.Product) {
	if !es.Enabled() || !DefaultShopSettings().Notifications.LowStock {
		return
	}

	low := es.LowStockVariants(product)
	if len(low) == 0 {
		return
	}

	subject := fmt.Sprintf("Low stock: %s", product.Name)
	body := lowStockBody(product, low)

	es.pending.Add(1)
	go func() {
		defer es.pending.Done()
		if err := es.SendEmail(es.cfg.AlertRecipients, subject, body); err != nil {
			return
		}
		es.logger.Info("Low stock alert sent",
			gecho.Field("product_id", product.ID),
			gecho.Field("variants", len(low)),
		)
	}()
}

// Wait blocks until alerts already started have finished.
func (es *EmailService) Wait() {
	es.pending.Wait()
}

func lowStockBody(product structs.Product, low []structs.ProductVariant) string {
	var items strings.Builder
	for _, v := range low {
		fmt.Fprintf(&items, "<li>%s (%s) - %d left at %s</li>",
			html.EscapeString(v.Name),
			html.EscapeString(v.SKU),
			v.Stock,
			lib.FormatMoney(lib.DefaultCurrency, v.Price),
		)
	}

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #15803d; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				ul { list-style-type: none; padding: 0; }
				li { padding: 5px 0; border-bottom: 1px solid #eee; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Low stock alert</h1>
				</div>
				<div class="content">
					<p><strong>%s</strong> (%s) is running low:</p>
					<ul>%s</ul>
				</div>
			</div>
		</body>
		</html>
	`, html.EscapeString(product.Name), html.EscapeString(product.Category), items.String())
}
