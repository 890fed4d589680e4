package http

import (
	"errors"
	"net/http"
	"strings"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/validators"
)

var queryValidator = validators.New()

type dashboardQuery struct {
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	Granularity string `validate:"omitempty,oneof=15m 30m 1h 2h 12h 1d"`
}

// parseDashboardQuery reads the optional date and granularity parameters. Missing values come
// back as the zero Day and the empty Granularity.
func parseDashboardQuery(r *http.Request) (models.Day, models.Granularity, error) {
	query := dashboardQuery{
		Date:        strings.TrimSpace(r.URL.Query().Get("date")),
		Granularity: strings.TrimSpace(r.URL.Query().Get("granularity")),
	}

	if err := queryValidator.Struct(query); err != nil {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) && validationErrors[0].Field() == "Date" {
			return models.Day{}, "", errInvalidDate(err)
		}
		return models.Day{}, "", errInvalidGranularity(err)
	}

	var day models.Day
	if query.Date != "" {
		parsed, err := models.ParseDay(query.Date)
		if err != nil {
			return models.Day{}, "", errInvalidDate(err)
		}
		day = parsed
	}

	var granularity models.Granularity
	if query.Granularity != "" {
		parsed, err := models.ParseGranularity(query.Granularity)
		if err != nil {
			return models.Day{}, "", errInvalidGranularity(err)
		}
		granularity = parsed
	}

	return day, granularity, nil
}
