package buffclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/internal/config"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiPrefix = "/api/v1"

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// Client é o cliente sem estado da API REST do Buff. Nenhum método faz retry.
type Client interface {
	ListCampaignGroups(ctx context.Context, userID, profileID string) (*domain.CampaignGroupList, error)
	CreateCampaignGroup(ctx context.Context, userID string, form domain.CampaignGroupForm) (*domain.CampaignGroup, error)
	UpdateCampaignGroup(ctx context.Context, userID, groupID string, patch domain.CampaignGroupPatch) (*domain.CampaignGroup, error)
	DeleteCampaignGroup(ctx context.Context, userID, groupID string) error
	AssignCampaigns(ctx context.Context, userID, groupID string, campaignIDs []string) error
	RemoveCampaigns(ctx context.Context, userID, groupID string, campaignIDs []string) error
	GetBidOptimizerData(ctx context.Context, query domain.BidOptimizerQuery) (*domain.BidOptimizerData, error)
	GetAmazonConnectionStatus(ctx context.Context, userID string) (*domain.ConnectionStatus, error)
}

type BuffClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

type Option func(*BuffClient)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *BuffClient) {
		c.httpClient = httpClient
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *BuffClient) {
		c.metrics = m
	}
}

// NewClient cria o cliente apontando para cfg.Buff.APIURL, fixo a partir daqui
func NewClient(cfg *config.Config, opts ...Option) Client {
	client := &BuffClient{
		baseURL: strings.TrimRight(cfg.Buff.APIURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Buff.Timeout,
		},
	}

	if cfg.Buff.RateLimit > 0 {
		burst := cfg.Buff.RateBurst
		if burst < 1 {
			burst = 1
		}
		client.rateLimiter = rate.NewLimiter(rate.Limit(cfg.Buff.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *BuffClient) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// do executa exatamente uma requisição. Status fora de 2xx vira RequestError com
// o corpo da resposta; falhas de transporte viram NetworkError.
func (c *BuffClient) do(ctx context.Context, operation, method, endpoint string, body, out any) error {
	label := strings.ReplaceAll(operation, " ", "_")
	logger := log.ForContext(ctx)

	if err := ctx.Err(); err != nil {
		return &NetworkError{Operation: operation, Err: err}
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			c.metrics.RecordAPIFailure(label, "rate_limit")
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			return &NetworkError{Operation: operation, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: erro ao serializar o corpo da requisição", operation)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.metrics.RecordAPIFailure(label, "request_creation")
		return errors.Wrapf(err, "%s: erro ao criar a requisição", operation)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if correlationID := log.GetCorrelationID(ctx); correlationID != "" {
		req.Header.Set("X-Correlation-ID", correlationID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPIFailure(label, "network_error")
		logger.WithError(err).Errorf("buff: erro ao executar a requisição %s", operation)
		return &NetworkError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			logger.WithError(readErr).Warn("buff: erro ao ler o corpo da resposta de erro")
		}

		c.metrics.RecordAPICall(label, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		logger.WithFields(log.Fields{
			"status_code": resp.StatusCode,
			"error":       string(text),
		}).Warnf("buff: requisição %s falhou", operation)

		return &RequestError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(text)),
		}
	}

	c.metrics.RecordAPICall(label, "success", duration)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &NetworkError{Operation: operation, Err: ctxErr}
		}
		c.metrics.RecordAPIFailure(label, "json_parse")
		return errors.Wrapf(err, "%s: erro ao decodificar a resposta", operation)
	}

	logrus.WithFields(logrus.Fields{
		"operation":   operation,
		"duration_ms": duration.Milliseconds(),
	}).Debug("buff: requisição concluída")

	return nil
}
