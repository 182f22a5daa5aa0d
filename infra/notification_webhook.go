package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/NLight-n/ClarityMDT-sub000/models"
	"github.com/NLight-n/ClarityMDT-sub000/utils"
)

const webhookTimeout = 10 * time.Second

// WebhookNotificationSender posts review notifications to a configured
// endpoint. With no endpoint configured it degrades to logging, so a
// deployment without a notification sink still works.
type WebhookNotificationSender struct {
	endpointUrl string
	httpClient  *http.Client
}

func NewWebhookNotificationSender(endpointUrl string) WebhookNotificationSender {
	return WebhookNotificationSender{
		endpointUrl: endpointUrl,
		httpClient:  &http.Client{Timeout: webhookTimeout},
	}
}

func (sender WebhookNotificationSender) SendCaseReviewed(
	ctx context.Context,
	notification models.CaseReviewedNotification,
) error {
	if sender.endpointUrl == "" {
		utils.LoggerFromContext(ctx).InfoContext(ctx, "no notification endpoint configured",
			"case_id", notification.CaseId, "recipients", len(notification.RecipientIds))
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return errors.Wrap(err, "could not marshal case review notification")
	}

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost,
				sender.endpointUrl, bytes.NewReader(body))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := sender.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 400 {
				err := fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
				if resp.StatusCode < 500 {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
	)
}
