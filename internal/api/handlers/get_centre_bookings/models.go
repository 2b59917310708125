package get_centre_bookings

import (
	"net/url"
	"time"

	"github.com/parkwise/PW-BookingService/internal/service/bookings/models"
)

const dateFormat = "2006-01-02"

// ParseQuery собирает запрос к сервису из query параметров
func ParseQuery(centreID string, query url.Values) (*models.GetCentreBookingsRequest, error) {
	req := &models.GetCentreBookingsRequest{
		CentreID:        centreID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(dateFormat, startDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}

	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(dateFormat, endDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}

	return req, nil
}
