// Package fieldappclient implementa el cliente HTTP de la app de campo donde
// los contratistas registran las actividades ejecutadas
package fieldappclient

import (
	"net/http"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/config"
)

type Client interface {
	GetReportedActivities(params ReportConsultationParams) (ReportConsultationResponse, error)
}

type FieldAppClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FieldAppClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
