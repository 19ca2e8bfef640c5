package services_test

import (
	"context"
	"testing"

	"trattoria/internal/domain/models"
	"trattoria/internal/i18n"
	"trattoria/internal/lib/logger/handlers/slogdiscard"
	restaurant "trattoria/internal/services/restaurant_service"
	services "trattoria/internal/services/site_service"
	"trattoria/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*services.SiteService, *restaurant.RestaurantStore, *i18n.Localizer) {
	t.Helper()

	l, err := i18n.New("en")
	require.NoError(t, err)

	log := slogdiscard.NewDiscardLogger()
	store := restaurant.New(log, l, memory.New(), restaurant.NewSequenceGenerator("n"))
	l.OnChange(store.HandleLanguageChange)
	store.Load(context.Background())

	return services.NewSiteService(log, store, l, "test-key"), store, l
}

func TestSiteService_Home(t *testing.T) {
	site, _, _ := setup(t)

	home := site.Home()

	require.Len(t, home.Featured, services.FeaturedCount)
	assert.Equal(t, "1", home.Featured[0].ID)
	assert.Equal(t, "3", home.Featured[2].ID)
	assert.Equal(t, "Bella Vista", home.Restaurant.Name)
	assert.Equal(t, "Featured Dishes", home.Texts["home.featuredDishes"])
	assert.Equal(t, "en", home.Lang)
	assert.Equal(t, i18n.DirLTR, home.Dir)
}

func TestSiteService_HomeWithFewItems(t *testing.T) {
	site, store, _ := setup(t)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3", "4", "5"} {
		store.DeleteMenuItem(ctx, id)
	}

	assert.Len(t, site.Home().Featured, 1)
}

func TestSiteService_Menu(t *testing.T) {
	site, store, _ := setup(t)

	store.AddMenuItem(context.Background(), models.MenuItem{Name: "Diavola", Category: "Pizza"})

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{name: "empty means all", category: "", wantIDs: []string{"1", "2", "3", "4", "5", "6", "n1"}},
		{name: "all label", category: "All", wantIDs: []string{"1", "2", "3", "4", "5", "6", "n1"}},
		{name: "pizza", category: "Pizza", wantIDs: []string{"1", "n1"}},
		{name: "unknown", category: "Sushi", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := site.Menu(tt.category)

			got := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				got = append(got, item.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestSiteService_Categories(t *testing.T) {
	site, _, l := setup(t)

	assert.Equal(t,
		[]string{"All", "Pizza", "Pasta", "Main Course", "Dessert", "Salads", "Burgers"},
		site.Categories(),
	)

	_, err := l.SetLanguage("ar")
	require.NoError(t, err)

	categories := site.Categories()
	assert.Equal(t, "الكل", categories[0])
	assert.Equal(t, "بيتزا", categories[1])
}

func TestSiteService_ContactLinks(t *testing.T) {
	site, _, _ := setup(t)

	links := site.Contact().Links

	assert.Equal(t, "tel:+1-555-0123", links.Call)
	assert.Equal(t, "https://wa.me/15550123", links.WhatsApp)
	assert.Equal(t, "https://maps.google.com/?q=123%20Main%20Street%2C%20Downtown%2C%20NY%2010001", links.Directions)
	assert.Equal(t, "https://www.google.com/maps/embed/v1/place?key=test-key&q=123%20Main%20Street%2C%20Downtown%2C%20NY%2010001", links.MapEmbed)
}

func TestSiteService_WhatsAppDigitsOnly(t *testing.T) {
	site, _, _ := setup(t)

	links := site.ContactLinks(models.RestaurantInfo{WhatsApp: "+39 (06) 555-01.23"})
	assert.Equal(t, "https://wa.me/39065550123", links.WhatsApp)
}

func TestSiteService_Navigation(t *testing.T) {
	site, _, l := setup(t)

	nav := site.Gallery().Nav
	require.Len(t, nav, 5)

	for _, link := range nav {
		assert.Equal(t, link.Path == "/gallery", link.Active, link.Path)
	}
	assert.Equal(t, "Gallery", nav[2].Label)

	_, err := l.SetLanguage("ar")
	require.NoError(t, err)

	about := site.About()
	assert.Equal(t, i18n.DirRTL, about.Dir)
	assert.Equal(t, "ar", about.Lang)
	assert.Equal(t, "من نحن", about.Texts["about.title"])
	assert.True(t, about.Nav[3].Active)
}
