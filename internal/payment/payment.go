package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/pkg/breaker"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config for the card-processor API. The secret key is injected here rather
// than held in process-wide state.
type Config struct {
	BaseURL   string `yaml:"baseURL" envconfig:"PAYMENT_BASE_URL"`
	SecretKey string `yaml:"secretKey" envconfig:"PAYMENT_SECRET_KEY"`
}

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type Client struct {
	cfg    Config
	client *http.Client
	cb     *breaker.CircuitBreaker
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Minute,
		},
		cb:  breaker.New(10, time.Second*30, 0.5, 3),
		log: log.Named("payment"),
	}
}

// CreateIntent asks the processor for a card payment intent. Confirmation
// arrives out of band; it is not awaited here.
func (c *Client) CreateIntent(ctx context.Context, req model.PaymentIntentRequest) (Intent, error) {
	body := struct {
		Amount             int64    `json:"amount"`
		Currency           string   `json:"currency"`
		ReceiptEmail       string   `json:"receipt_email"`
		PaymentMethodTypes []string `json:"payment_method_types"`
	}{
		Amount:             req.Amount,
		Currency:           req.Currency,
		ReceiptEmail:       req.ReceiptEmail,
		PaymentMethodTypes: []string{"card"},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return Intent{}, err
	}

	var intent Intent
	err = c.cb.Call(func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/payment_intents", bytes.NewReader(data))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Idempotency-Key", uuid.NewString())

		resp, err := c.client.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return errors.Errorf("payment intent: status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&intent)
	})
	if err != nil {
		c.log.Error("CreateIntent", zap.Error(err))
		return Intent{}, err
	}
	return intent, nil
}
