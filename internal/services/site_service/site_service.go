package services

import (
	"log/slog"
	"net/url"
	"strings"

	"trattoria/internal/domain/models"
	"trattoria/internal/i18n"

	"golang.org/x/text/language"
)

const FeaturedCount = 3

// Store чтение данных ресторана
type Store interface {
	RestaurantInfo() models.RestaurantInfo
	MenuItems() []models.MenuItem
	GalleryImages() []models.GalleryImage
}

type Translator interface {
	Language() language.Tag
	T(key string) string
}

type NavLink struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Page общая часть всех страниц сайта
type Page struct {
	Lang  string            `json:"lang"`
	Dir   string            `json:"dir"`
	Nav   []NavLink         `json:"nav"`
	Texts map[string]string `json:"texts"`
}

type ContactLinks struct {
	Call       string `json:"call"`
	WhatsApp   string `json:"whatsapp"`
	MapEmbed   string `json:"map_embed"`
	Directions string `json:"directions"`
}

type HomePage struct {
	Page
	Restaurant models.RestaurantInfo `json:"restaurant"`
	Featured   []models.MenuItem     `json:"featured"`
	Links      ContactLinks          `json:"links"`
}

type MenuPage struct {
	Page
	Categories []string          `json:"categories"`
	Selected   string            `json:"selected"`
	Items      []models.MenuItem `json:"items"`
	Links      ContactLinks      `json:"links"`
}

type GalleryPage struct {
	Page
	Images []models.GalleryImage `json:"images"`
	Links  ContactLinks          `json:"links"`
}

type AboutPage struct {
	Page
	Restaurant models.RestaurantInfo `json:"restaurant"`
	Links      ContactLinks          `json:"links"`
}

type ContactPage struct {
	Page
	Restaurant models.RestaurantInfo `json:"restaurant"`
	Links      ContactLinks          `json:"links"`
}

var navigation = []struct {
	path string
	key  string
}{
	{"/", "nav.home"},
	{"/menu", "nav.menu"},
	{"/gallery", "nav.gallery"},
	{"/about", "nav.about"},
	{"/contact", "nav.contact"},
}

var pageTexts = map[string][]string{
	"/":        {"home.featuredDishes", "home.viewFullMenu", "home.openingHours", "home.location", "home.callToOrder"},
	"/menu":    {"menu.title", "menu.subtitle", "menu.callNowToOrder"},
	"/gallery": {"gallery.title", "gallery.subtitle"},
	"/about":   {"about.title", "about.subtitle", "about.ourStory", "about.meetTeam"},
	"/contact": {
		"contact.title", "contact.subtitle", "contact.phone", "contact.whatsapp", "contact.address",
		"contact.openingHours", "contact.getDirections", "contact.messageOnWhatsApp",
	},
}

// SiteService собирает модели страниц сайта поверх RestaurantStore
type SiteService struct {
	log        *slog.Logger
	store      Store
	tr         Translator
	mapsAPIKey string
}

func NewSiteService(log *slog.Logger, store Store, tr Translator, mapsAPIKey string) *SiteService {
	return &SiteService{
		log:        log,
		store:      store,
		tr:         tr,
		mapsAPIKey: mapsAPIKey,
	}
}

func (s *SiteService) Home() HomePage {
	info := s.store.RestaurantInfo()
	menu := s.store.MenuItems()

	if len(menu) > FeaturedCount {
		menu = menu[:FeaturedCount]
	}

	return HomePage{
		Page:       s.page("/"),
		Restaurant: info,
		Featured:   menu,
		Links:      s.ContactLinks(info),
	}
}

// Menu фильтрует меню по категории. Пустая категория или "Все" - все позиции.
func (s *SiteService) Menu(category string) MenuPage {
	info := s.store.RestaurantInfo()
	menu := s.store.MenuItems()
	all := s.tr.T("menu.all")

	if category == "" {
		category = all
	}

	items := menu
	if category != all {
		items = make([]models.MenuItem, 0, len(menu))
		for _, item := range menu {
			if item.Category == category {
				items = append(items, item)
			}
		}

		if len(items) == 0 {
			s.log.Debug("no menu items in category", slog.String("category", category))
		}
	}

	return MenuPage{
		Page:       s.page("/menu"),
		Categories: s.Categories(),
		Selected:   category,
		Items:      items,
		Links:      s.ContactLinks(info),
	}
}

// Categories "Все" + категории меню в порядке появления
func (s *SiteService) Categories() []string {
	return append([]string{s.tr.T("menu.all")}, models.Categories(s.store.MenuItems())...)
}

func (s *SiteService) Gallery() GalleryPage {
	return GalleryPage{
		Page:   s.page("/gallery"),
		Images: s.store.GalleryImages(),
		Links:  s.ContactLinks(s.store.RestaurantInfo()),
	}
}

func (s *SiteService) About() AboutPage {
	info := s.store.RestaurantInfo()

	return AboutPage{
		Page:       s.page("/about"),
		Restaurant: info,
		Links:      s.ContactLinks(info),
	}
}

func (s *SiteService) Contact() ContactPage {
	info := s.store.RestaurantInfo()

	return ContactPage{
		Page:       s.page("/contact"),
		Restaurant: info,
		Links:      s.ContactLinks(info),
	}
}

// Navigation пункты меню навигации, активный - текущий путь
func (s *SiteService) Navigation(current string) []NavLink {
	links := make([]NavLink, 0, len(navigation))
	for _, n := range navigation {
		links = append(links, NavLink{
			Path:   n.path,
			Label:  s.tr.T(n.key),
			Active: n.path == current,
		})
	}

	return links
}

func (s *SiteService) ContactLinks(info models.RestaurantInfo) ContactLinks {
	address := escapeComponent(info.Address)

	return ContactLinks{
		Call:       "tel:" + info.Phone,
		WhatsApp:   "https://wa.me/" + digitsOnly(info.WhatsApp),
		MapEmbed:   "https://www.google.com/maps/embed/v1/place?key=" + escapeComponent(s.mapsAPIKey) + "&q=" + address,
		Directions: "https://maps.google.com/?q=" + address,
	}
}

func (s *SiteService) page(path string) Page {
	tag := s.tr.Language()

	texts := map[string]string{"nav.callNow": s.tr.T("nav.callNow")}
	for _, key := range pageTexts[path] {
		texts[key] = s.tr.T(key)
	}

	return Page{
		Lang:  tag.String(),
		Dir:   i18n.Direction(tag),
		Nav:   s.Navigation(path),
		Texts: texts,
	}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// escapeComponent кодирует значение параметра URL, пробел - %20, а не "+"
func escapeComponent(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
