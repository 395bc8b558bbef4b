package fieldappclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReportConsultationParams struct {
	StartDate  string
	EndDate    string
	Contractor string
}

// ReportedActivity es el registro crudo tal como lo reporta la app de campo.
// La fecha llega como texto y puede venir vacía o malformada; el integrador
// decide qué hacer con ella.
type ReportedActivity struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Contractor string `json:"contractor"`
	Type       string `json:"type"`
	Subtype    string `json:"subtype"`
	Location   struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"location"`
	Beneficiaries int `json:"beneficiaries"`
	Educational   struct {
		Included bool   `json:"included"`
		Type     string `json:"type"`
	} `json:"educationalActivity"`
}

type ReportConsultationResponse []ReportedActivity

func (c *FieldAppClient) GetReportedActivities(params ReportConsultationParams) (ReportConsultationResponse, error) {
	var response ReportConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir la URL de la solicitud
	endpoint, err := url.Parse(c.config.FieldApp.URL)
	if err != nil {
		return response, fmt.Errorf("error al analizar la URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/reports/activities")

	query := endpoint.Query()
	query.Set("start_date", params.StartDate)
	query.Set("end_date", params.EndDate)
	if params.Contractor != "" {
		query.Set("contractor", params.Contractor)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("error al crear la solicitud: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.FieldApp.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("error al ejecutar la solicitud: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("la solicitud falló con estado: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("error al decodificar la respuesta: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Respuesta de la app de campo: ", utils.PrettyJson(response))
	}

	return response, nil
}
