package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/utero/internal/i18n"
	"github.com/terraincognita07/utero/internal/metrics"
	"github.com/terraincognita07/utero/internal/services"
	"go.uber.org/zap"
)

const (
	contextLanguageKey = "language"
	defaultTokenTTL    = 30 * 24 * time.Hour
	ownerSubject       = "owner"
)

type Handler struct {
	tracker   *services.TrackerService
	secretKey []byte
	location  *time.Location
	i18n      *i18n.Manager
	metrics   *metrics.Collector
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewHandler(tracker *services.TrackerService, secretKey string, location *time.Location, i18nManager *i18n.Manager, collector *metrics.Collector, logger *zap.Logger) (*Handler, error) {
	if tracker == nil {
		return nil, errors.New("tracker service is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		tracker:   tracker,
		secretKey: []byte(secretKey),
		location:  location,
		i18n:      i18nManager,
		metrics:   collector,
		validate:  newValidator(),
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (handler *Handler) today() time.Time {
	return services.LocalToday(handler.now(), handler.location)
}
