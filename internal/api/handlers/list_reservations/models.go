package list_reservations

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// ToServiceRequest собирает фильтр из query параметров spaceId, date и includeCancelled
func ToServiceRequest(query url.Values) (*models.ListReservationsRequest, error) {
	spaceID, err := strconv.ParseInt(query.Get("spaceId"), 10, 64)
	if err != nil {
		return nil, err
	}

	req := &models.ListReservationsRequest{SpaceID: spaceID}

	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
