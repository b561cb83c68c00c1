package list_spaces

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
)

// ToServiceRequest собирает фильтр из query параметров category и available
func ToServiceRequest(query url.Values) (*models.ListSpacesRequest, error) {
	req := &models.ListSpacesRequest{}

	if category := query.Get("category"); category != "" {
		req.Category = &category
	}

	if raw := query.Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.Available = &available
	}

	return req, nil
}
