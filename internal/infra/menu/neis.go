// Package menu fetches daily meal menus from the NEIS school-meals open API.
package menu

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"mealbell/config"
	"mealbell/internal/domain/entity"
	"mealbell/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

type neisSource struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	officeCode string
	schoolCode string
}

// NewNEISSource creates the menu source backed by the NEIS meal API.
func NewNEISSource(cfg *config.MenuConfig) service.MenuSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &neisSource{
		client:     &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		officeCode: cfg.OfficeCode,
		schoolCode: cfg.SchoolCode,
	}
}

// neisResponse mirrors the NEIS payload: the top-level key holds a head
// block followed by a row block, so each element is decoded separately.
type neisResponse struct {
	MealServiceDietInfo []json.RawMessage `json:"mealServiceDietInfo"`
}

type neisBlock struct {
	Row []neisRow `json:"row"`
}

type neisRow struct {
	MealName string `json:"MMEAL_SC_NM"`
	Dishes   string `json:"DDISH_NM"`
}

// FetchMenu returns the raw dish payload for one slot on the given date.
// A date or slot the API has no row for yields an empty string.
func (s *neisSource) FetchMenu(ctx context.Context, date string, slot entity.MealSlot) (string, error) {
	menus, err := s.FetchMenus(ctx, date)
	if err != nil {
		return "", err
	}

	return menus[slot], nil
}

// FetchMenus returns the raw dish payloads for every slot served on the date.
func (s *neisSource) FetchMenus(ctx context.Context, date string) (map[entity.MealSlot]string, error) {
	query := url.Values{}
	query.Set("KEY", s.apiKey)
	query.Set("Type", "json")
	query.Set("ATPT_OFCDC_SC_CODE", s.officeCode)
	query.Set("SD_SCHUL_CODE", s.schoolCode)
	query.Set("MLSV_YMD", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/mealServiceDietInfo?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build meal request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch meal menus")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("meal API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read meal response")
	}

	var parsed neisResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "decode meal response")
	}

	// A missing top-level key means no meal is served that day.
	menus := make(map[entity.MealSlot]string)
	for _, raw := range parsed.MealServiceDietInfo {
		var block neisBlock
		if err := json.Unmarshal(raw, &block); err != nil {
			continue
		}
		for _, row := range block.Row {
			slot := entity.MealSlot(row.MealName)
			if !slot.IsValid() {
				continue
			}
			menus[slot] = row.Dishes
		}
	}

	return menus, nil
}
