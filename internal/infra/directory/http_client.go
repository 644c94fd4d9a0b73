package directory

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const serviceLocationsPath = "/service-locations"

// serviceLocationDTO is the directory's wire format for one entry.
type serviceLocationDTO struct {
	ID           string  `json:"id"`
	LocationName string  `json:"locationName"`
	LocationType string  `json:"locationType"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// httpDirectory fetches service locations from the remote directory over HTTP.
type httpDirectory struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPDirectory creates a directory client for endpoint, e.g. "https://directory.example.edu/api".
func NewHTTPDirectory(endpoint string, timeout time.Duration, logger *slog.Logger) service.DirectoryService {
	return &httpDirectory{
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetServiceLocations calls GET {endpoint}/service-locations[?category=...].
// A 404 or an empty/null body is treated as "no result" rather than an error.
func (d *httpDirectory) GetServiceLocations(ctx context.Context, filter *service.DirectoryFilter) ([]*entity.ServiceLocation, error) {
	u, err := url.Parse(d.baseURL + serviceLocationsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse directory URL")
	}

	if filter != nil && len(filter.Categories) > 0 {
		q := u.Query()
		for _, category := range filter.Categories {
			q.Add("category", category.String())
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directory request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch service locations")
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		d.logger.Debug("Directory returned no service locations", slog.String("url", u.String()))

		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("directory returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var dtos []serviceLocationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to decode service locations")
	}
	if dtos == nil {
		return nil, nil
	}

	locations := make([]*entity.ServiceLocation, 0, len(dtos))
	for _, dto := range dtos {
		locations = append(locations, d.toServiceLocation(dto))
	}

	return locations, nil
}

func (d *httpDirectory) toServiceLocation(dto serviceLocationDTO) *entity.ServiceLocation {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		// Directory IDs are not guaranteed to be UUIDs; derive a stable one from the raw ID.
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(d.baseURL+"/"+dto.ID+"/"+dto.LocationName))
	}

	return &entity.ServiceLocation{
		ID:        id,
		Name:      dto.LocationName,
		Category:  entity.ParseCategory(dto.LocationType),
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}
