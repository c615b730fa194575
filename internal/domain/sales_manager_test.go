package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testManager() *SalesManager {
	return &SalesManager{
		ID:              1,
		Name:            "Seller 1",
		Languages:       []string{"German", "English"},
		Products:        []string{"SolarPanels", "Heatpumps"},
		CustomerRatings: []string{"Gold", "Silver"},
	}
}

func TestSalesManager_SupportsProducts(t *testing.T) {
	manager := testManager()

	// Полное покрытие набора продуктов
	assert.True(t, manager.SupportsProducts([]string{"SolarPanels"}))
	assert.True(t, manager.SupportsProducts([]string{"SolarPanels", "Heatpumps"}))

	// Частичное покрытие недостаточно: требуется superset, а не пересечение
	assert.False(t, manager.SupportsProducts([]string{"SolarPanels", "Windmills"}))
	assert.False(t, manager.SupportsProducts([]string{"Windmills"}))

	// Пустой запрос покрывается тривиально
	assert.True(t, manager.SupportsProducts(nil))
}

func TestSalesManager_SupportsLanguage(t *testing.T) {
	manager := testManager()

	assert.True(t, manager.SupportsLanguage("German"))
	assert.False(t, manager.SupportsLanguage("Persian"))
	// Совпадение чувствительно к регистру
	assert.False(t, manager.SupportsLanguage("german"))
}

func TestSalesManager_SupportsRating(t *testing.T) {
	manager := testManager()

	assert.True(t, manager.SupportsRating("Gold"))
	assert.False(t, manager.SupportsRating("Bronze"))
}

func TestSalesManager_CanServe(t *testing.T) {
	manager := testManager()

	assert.True(t, manager.CanServe([]string{"SolarPanels", "Heatpumps"}, "German", "Gold"))
	assert.False(t, manager.CanServe([]string{"SolarPanels", "Heatpumps"}, "Persian", "Gold"))
	assert.False(t, manager.CanServe([]string{"SolarPanels", "Heatpumps"}, "German", "Bronze"))
	assert.False(t, manager.CanServe([]string{"Windmills"}, "German", "Gold"))
}
