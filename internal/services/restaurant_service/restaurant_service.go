package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"trattoria/internal/domain/models"
	"trattoria/internal/lib/logger/sl"
	"trattoria/internal/metrics"
	"trattoria/internal/storage"

	"golang.org/x/text/language"
)

// Ключи снимков в долговременном хранилище
const (
	KeyRestaurantInfo = "restaurantInfo"
	KeyMenuItems      = "menuItems"
	KeyGalleryImages  = "galleryImages"
)

const maxIDAttempts = 100

// Translator источник локализованных строк для значений по умолчанию
type Translator interface {
	Language() language.Tag
	T(key string) string
}

// SnapshotStore долговременное key-value хранилище снимков.
// Отсутствующий ключ - storage.ErrorNoSuchKey.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RestaurantStore единственный источник данных о ресторане, меню и галерее.
//
// Каждая мутация сначала меняет состояние в памяти, затем целиком записывает
// затронутую коллекцию в SnapshotStore. Ошибки записи только логируются:
// значение в памяти остается актуальным до конца жизни процесса.
type RestaurantStore struct {
	log       *slog.Logger
	tr        Translator
	snapshots SnapshotStore
	ids       IDGenerator

	mu      sync.RWMutex
	info    models.RestaurantInfo
	menu    []models.MenuItem
	gallery []models.GalleryImage
	// customized[key] - коллекция загружена из снимка или менялась,
	// такую коллекцию смена языка не перезаписывает
	customized map[string]bool
}

// New создает хранилище, заполненное значениями по умолчанию на активном языке.
// Сохраненные снимки применяются отдельно вызовом Load.
func New(log *slog.Logger, tr Translator, snapshots SnapshotStore, ids IDGenerator) *RestaurantStore {
	return &RestaurantStore{
		log:        log,
		tr:         tr,
		snapshots:  snapshots,
		ids:        ids,
		info:       defaultRestaurantInfo(tr),
		menu:       defaultMenuItems(tr),
		gallery:    defaultGalleryImages(),
		customized: make(map[string]bool, 3),
	}
}

// Load накладывает сохраненные снимки поверх значений по умолчанию.
// Каждая коллекция обрабатывается независимо; битый снимок отбрасывается.
func (s *RestaurantStore) Load(ctx context.Context) {
	const op = "service.RestaurantStore.Load"

	log := s.log.With(
		slog.String("op", op),
		slog.String("language", s.tr.Language().String()),
	)

	log.Info("loading saved snapshots")

	s.mu.Lock()
	defer s.mu.Unlock()

	var info *models.RestaurantInfo
	if s.loadSnapshot(ctx, log, KeyRestaurantInfo, &info) && info != nil {
		s.info = info.Clone()
		s.customized[KeyRestaurantInfo] = true
	}

	var menu []models.MenuItem
	if s.loadSnapshot(ctx, log, KeyMenuItems, &menu) && menu != nil {
		s.menu = menu
		s.customized[KeyMenuItems] = true
	}

	var gallery []models.GalleryImage
	if s.loadSnapshot(ctx, log, KeyGalleryImages, &gallery) && gallery != nil {
		s.gallery = gallery
		s.customized[KeyGalleryImages] = true
	}

	log.Info("store ready",
		slog.Int("menu_items", len(s.menu)),
		slog.Int("gallery_images", len(s.gallery)),
	)
}

// loadSnapshot читает и декодирует снимок key в dst. false - оставить значение по умолчанию.
func (s *RestaurantStore) loadSnapshot(ctx context.Context, log *slog.Logger, key string, dst any) bool {
	log = log.With(slog.String("collection", key))

	raw, err := s.snapshots.Get(ctx, key)
	if errors.Is(err, storage.ErrorNoSuchKey) {
		metrics.SnapshotLoadsTotal.WithLabelValues(key, "missing").Inc()
		log.Debug("no saved snapshot")
		return false
	}
	if err != nil {
		metrics.SnapshotLoadsTotal.WithLabelValues(key, "error").Inc()
		log.Error("failed to read saved snapshot", sl.Err(err))
		return false
	}

	if strings.TrimSpace(raw) == "null" {
		err = storage.ErrInvalidSnapshot
	} else {
		err = json.Unmarshal([]byte(raw), dst)
	}
	if err != nil {
		metrics.SnapshotLoadsTotal.WithLabelValues(key, "corrupt").Inc()
		log.Error("error parsing saved snapshot", sl.Err(err))
		return false
	}

	metrics.SnapshotLoadsTotal.WithLabelValues(key, "loaded").Inc()
	log.Info("saved snapshot applied")

	return true
}

// HandleLanguageChange пересчитывает значения по умолчанию для информации
// о ресторане и меню. Коллекции с сохраненными изменениями не трогаются,
// галерея от языка не зависит.
func (s *RestaurantStore) HandleLanguageChange(tag language.Tag) {
	const op = "service.RestaurantStore.HandleLanguageChange"

	log := s.log.With(
		slog.String("op", op),
		slog.String("language", tag.String()),
	)

	metrics.LanguageSwitchesTotal.WithLabelValues(tag.String()).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.customized[KeyRestaurantInfo] {
		s.info = defaultRestaurantInfo(s.tr)
	}

	if !s.customized[KeyMenuItems] {
		s.menu = defaultMenuItems(s.tr)
	}

	log.Info("localized defaults recomputed",
		slog.Bool("restaurant_info_kept", s.customized[KeyRestaurantInfo]),
		slog.Bool("menu_items_kept", s.customized[KeyMenuItems]),
	)
}

func (s *RestaurantStore) RestaurantInfo() models.RestaurantInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.info.Clone()
}

func (s *RestaurantStore) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, len(s.menu))
	copy(out, s.menu)

	return out
}

func (s *RestaurantStore) GalleryImages() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GalleryImage, len(s.gallery))
	copy(out, s.gallery)

	return out
}

// UpdateRestaurantInfo применяет патч; поля, отсутствующие в патче, не меняются
func (s *RestaurantStore) UpdateRestaurantInfo(ctx context.Context, patch models.RestaurantInfoPatch) models.RestaurantInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.IsEmpty() {
		s.log.Debug("empty restaurant info patch, record saved as is")
	}

	s.info = patch.Apply(s.info)
	s.customized[KeyRestaurantInfo] = true
	s.persist(ctx, KeyRestaurantInfo, s.info)

	return s.info.Clone()
}

// AddMenuItem добавляет копию item в конец меню с новым идентификатором.
// Цена и категория не проверяются.
func (s *RestaurantStore) AddMenuItem(ctx context.Context, item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.uniqueID(func(id string) bool { return indexOfMenuItem(s.menu, id) >= 0 })

	s.menu = append(s.menu, item)
	s.customized[KeyMenuItems] = true
	s.persist(ctx, KeyMenuItems, s.menu)

	return item
}

// UpdateMenuItem применяет патч к позиции с указанным id, позиция в меню сохраняется.
// Неизвестный id - ничего не делает.
func (s *RestaurantStore) UpdateMenuItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfMenuItem(s.menu, id)
	if i < 0 {
		s.log.Debug("menu item not found", slog.String("id", id))
		return models.MenuItem{}, false
	}

	if patch.IsEmpty() {
		s.log.Debug("empty menu item patch, menu saved as is", slog.String("id", id))
	}

	// новый срез, чтобы ранее выданные копии не менялись
	menu := make([]models.MenuItem, len(s.menu))
	copy(menu, s.menu)
	menu[i] = patch.Apply(menu[i])

	s.menu = menu
	s.customized[KeyMenuItems] = true
	s.persist(ctx, KeyMenuItems, s.menu)

	return menu[i], true
}

// DeleteMenuItem удаляет позицию с указанным id. Неизвестный id - ничего не делает.
func (s *RestaurantStore) DeleteMenuItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfMenuItem(s.menu, id)
	if i < 0 {
		s.log.Debug("menu item not found", slog.String("id", id))
		return false
	}

	menu := make([]models.MenuItem, 0, len(s.menu)-1)
	menu = append(menu, s.menu[:i]...)
	menu = append(menu, s.menu[i+1:]...)

	s.menu = menu
	s.customized[KeyMenuItems] = true
	s.persist(ctx, KeyMenuItems, s.menu)

	return true
}

func (s *RestaurantStore) AddGalleryImage(ctx context.Context, image models.GalleryImage) models.GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = s.uniqueID(func(id string) bool { return indexOfGalleryImage(s.gallery, id) >= 0 })

	s.gallery = append(s.gallery, image)
	s.customized[KeyGalleryImages] = true
	s.persist(ctx, KeyGalleryImages, s.gallery)

	return image
}

func (s *RestaurantStore) DeleteGalleryImage(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfGalleryImage(s.gallery, id)
	if i < 0 {
		s.log.Debug("gallery image not found", slog.String("id", id))
		return false
	}

	gallery := make([]models.GalleryImage, 0, len(s.gallery)-1)
	gallery = append(gallery, s.gallery[:i]...)
	gallery = append(gallery, s.gallery[i+1:]...)

	s.gallery = gallery
	s.customized[KeyGalleryImages] = true
	s.persist(ctx, KeyGalleryImages, s.gallery)

	return true
}

// persist записывает коллекцию целиком. Вызывается под s.mu.
// Изменение в памяти уже применено, поэтому отмена запроса клиентом запись не прерывает.
func (s *RestaurantStore) persist(ctx context.Context, key string, value any) {
	const op = "service.RestaurantStore.persist"

	log := s.log.With(
		slog.String("op", op),
		slog.String("collection", key),
	)

	if err := s.writeSnapshot(context.WithoutCancel(ctx), key, value); err != nil {
		metrics.SnapshotWritesTotal.WithLabelValues(key, "error").Inc()
		log.Error("failed to save snapshot", sl.Err(err))
		return
	}

	metrics.SnapshotWritesTotal.WithLabelValues(key, "ok").Inc()
	log.Debug("snapshot saved")
}

func (s *RestaurantStore) writeSnapshot(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.snapshots.Set(ctx, key, string(data))
}

// uniqueID берет идентификаторы у генератора, пока не найдется незанятый.
// После maxIDAttempts неудач переходит на UUID.
func (s *RestaurantStore) uniqueID(taken func(id string) bool) string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if !taken(id) {
			return id
		}
	}

	s.log.Error("id generator keeps returning used ids, falling back to uuid",
		slog.Int("attempts", maxIDAttempts),
	)

	for {
		id := UUIDGenerator{}.NewID()
		if !taken(id) {
			return id
		}
	}
}

func indexOfMenuItem(items []models.MenuItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}

func indexOfGalleryImage(images []models.GalleryImage, id string) int {
	for i := range images {
		if images[i].ID == id {
			return i
		}
	}

	return -1
}
