package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mealbell/config"
	"mealbell/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *neisSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source := NewNEISSource(&config.MenuConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		OfficeCode: "C10",
		SchoolCode: "7150658",
		Timeout:    time.Second,
	})

	return source.(*neisSource)
}

func TestFetchMenusParsesRows(t *testing.T) {
	t.Parallel()

	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("KEY"))
		assert.Equal(t, "20260901", r.URL.Query().Get("MLSV_YMD"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"mealServiceDietInfo": [
				{"head": [{"list_total_count": 2}]},
				{"row": [
					{"MMEAL_SC_NM": "조식", "DDISH_NM": "김치찌개(9)<br/>잡곡밥"},
					{"MMEAL_SC_NM": "중식", "DDISH_NM": "돈까스(5.6)<br/>미역국(5)"}
				]}
			]
		}`))
	})

	menus, err := source.FetchMenus(context.Background(), "20260901")
	require.NoError(t, err)

	assert.Equal(t, "김치찌개(9)<br/>잡곡밥", menus[entity.MealSlotMorning])
	assert.Equal(t, "돈까스(5.6)<br/>미역국(5)", menus[entity.MealSlotLunch])
	assert.Empty(t, menus[entity.MealSlotDinner])
}

func TestFetchMenuNoMealDay(t *testing.T) {
	t.Parallel()

	source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		// NEIS omits the data key entirely when nothing is served.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"RESULT": {"CODE": "INFO-200", "MESSAGE": "해당하는 데이터가 없습니다."}}`))
	})

	raw, err := source.FetchMenu(context.Background(), "20260905", entity.MealSlotLunch)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestFetchMenusServerError(t *testing.T) {
	t.Parallel()

	source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := source.FetchMenus(context.Background(), "20260901")
	assert.Error(t, err)
}
