package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/galleyops/trolleyd/internal/trolley/entity"
	"github.com/galleyops/trolleyd/internal/trolley/repository"
)

// Fakes is an in-memory substitute for repository.Repositories. All stores
// share one backing dataset so cross-store effects (cascading deletes,
// association lookups) behave like the real schema.
type Fakes struct {
	DB *MemDB

	Trolley       *FakeTrolleyStore
	Level         *FakeLevelStore
	Drawer        *FakeDrawerStore
	Product       *FakeProductStore
	Specification *FakeSpecificationStore
	Sensor        *FakeSensorReadingStore
	QRScan        *FakeQRScanStore
}

// NewFakes creates an empty in-memory store bundle.
func NewFakes() *Fakes {
	db := &MemDB{scanTrolleys: make(map[uint][]uint)}
	return &Fakes{
		DB:            db,
		Trolley:       &FakeTrolleyStore{db: db},
		Level:         &FakeLevelStore{db: db},
		Drawer:        &FakeDrawerStore{db: db},
		Product:       &FakeProductStore{db: db},
		Specification: &FakeSpecificationStore{db: db},
		Sensor:        &FakeSensorReadingStore{db: db},
		QRScan:        &FakeQRScanStore{db: db},
	}
}

// MemDB holds every record. Callers seed it through the fake stores.
type MemDB struct {
	mu  sync.Mutex
	seq uint

	trolleys  []entity.Trolley
	levels    []entity.TrolleyLevel
	drawers   []entity.TrolleyDrawer
	products  []entity.Product
	specs     []entity.Specification
	specItems []entity.SpecificationItem
	readings  []entity.SensorReading
	scans     []entity.QRScan

	scanTrolleys map[uint][]uint
}

func (db *MemDB) nextID() uint {
	db.seq++
	return db.seq
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// FakeTrolleyStore implements service.TrolleyStore.
type FakeTrolleyStore struct {
	db *MemDB
}

func (f *FakeTrolleyStore) Create(ctx context.Context, trolley *entity.Trolley) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	trolley.ID = f.db.nextID()
	now := time.Now()
	trolley.CreatedAt, trolley.UpdatedAt = now, now
	f.db.trolleys = append(f.db.trolleys, *trolley)
	return nil
}

func (f *FakeTrolleyStore) FindByID(ctx context.Context, id uint) (*entity.Trolley, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, t := range f.db.trolleys {
		if t.ID == id {
			out := t
			out.Levels = f.levelsOf(id)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeTrolleyStore) List(ctx context.Context, offset, limit int) ([]entity.Trolley, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return paginate(f.db.trolleys, offset, limit), int64(len(f.db.trolleys)), nil
}

func (f *FakeTrolleyStore) Update(ctx context.Context, trolley *entity.Trolley) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, t := range f.db.trolleys {
		if t.ID == trolley.ID {
			trolley.UpdatedAt = time.Now()
			f.db.trolleys[i] = *trolley
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeTrolleyStore) Delete(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	idx := -1
	for i, t := range f.db.trolleys {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrNotFound
	}
	f.db.trolleys = append(f.db.trolleys[:idx], f.db.trolleys[idx+1:]...)

	// Cascade like the schema does.
	kept := f.db.levels[:0]
	for _, l := range f.db.levels {
		if l.TrolleyID != id {
			kept = append(kept, l)
		}
	}
	f.db.levels = kept

	keptDrawers := f.db.drawers[:0]
	for _, d := range f.db.drawers {
		if d.TrolleyID != id {
			keptDrawers = append(keptDrawers, d)
			continue
		}
		for j := range f.db.readings {
			if f.db.readings[j].DrawerRefID != nil && *f.db.readings[j].DrawerRefID == d.ID {
				f.db.readings[j].DrawerRefID = nil
			}
		}
	}
	f.db.drawers = keptDrawers

	for i := range f.db.specs {
		if f.db.specs[i].TrolleyTemplateID != nil && *f.db.specs[i].TrolleyTemplateID == id {
			f.db.specs[i].TrolleyTemplateID = nil
		}
	}
	return nil
}

func (f *FakeTrolleyStore) ListLevels(ctx context.Context, trolleyID uint) ([]entity.TrolleyLevel, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return f.levelsOf(trolleyID), nil
}

func (f *FakeTrolleyStore) levelsOf(trolleyID uint) []entity.TrolleyLevel {
	out := []entity.TrolleyLevel{}
	for _, l := range f.db.levels {
		if l.TrolleyID == trolleyID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LevelNumber < out[j].LevelNumber })
	return out
}

func (f *FakeTrolleyStore) ListDrawers(ctx context.Context, trolleyID uint) ([]entity.TrolleyDrawer, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []entity.TrolleyDrawer{}
	for _, d := range f.db.drawers {
		if d.TrolleyID == trolleyID {
			d.Level = f.db.levelByID(d.LevelID)
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DrawerID < out[j].DrawerID })
	return out, nil
}

func (db *MemDB) levelByID(id uint) *entity.TrolleyLevel {
	for _, l := range db.levels {
		if l.ID == id {
			out := l
			return &out
		}
	}
	return nil
}

func (db *MemDB) drawerByID(id uint) *entity.TrolleyDrawer {
	for _, d := range db.drawers {
		if d.ID == id {
			out := d
			out.Level = db.levelByID(d.LevelID)
			return &out
		}
	}
	return nil
}

func (db *MemDB) productByID(id uint) *entity.Product {
	for _, p := range db.products {
		if p.ID == id {
			out := p
			return &out
		}
	}
	return nil
}

// FakeLevelStore implements service.LevelStore.
type FakeLevelStore struct {
	db *MemDB
}

func (f *FakeLevelStore) Create(ctx context.Context, level *entity.TrolleyLevel) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	level.ID = f.db.nextID()
	now := time.Now()
	level.CreatedAt, level.UpdatedAt = now, now
	f.db.levels = append(f.db.levels, *level)
	return nil
}

func (f *FakeLevelStore) FindByID(ctx context.Context, id uint) (*entity.TrolleyLevel, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if l := f.db.levelByID(id); l != nil {
		return l, nil
	}
	return nil, repository.ErrNotFound
}

func (f *FakeLevelStore) List(ctx context.Context, offset, limit int) ([]entity.TrolleyLevel, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return paginate(f.db.levels, offset, limit), int64(len(f.db.levels)), nil
}

func (f *FakeLevelStore) Update(ctx context.Context, level *entity.TrolleyLevel) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, l := range f.db.levels {
		if l.ID == level.ID {
			level.UpdatedAt = time.Now()
			f.db.levels[i] = *level
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeLevelStore) Delete(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, l := range f.db.levels {
		if l.ID == id {
			f.db.levels = append(f.db.levels[:i], f.db.levels[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeDrawerStore implements service.DrawerStore.
type FakeDrawerStore struct {
	db *MemDB
}

func (f *FakeDrawerStore) Create(ctx context.Context, drawer *entity.TrolleyDrawer) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	drawer.ID = f.db.nextID()
	now := time.Now()
	drawer.CreatedAt, drawer.UpdatedAt = now, now
	stored := *drawer
	stored.Level, stored.Trolley = nil, nil
	f.db.drawers = append(f.db.drawers, stored)
	return nil
}

func (f *FakeDrawerStore) FindByID(ctx context.Context, id uint) (*entity.TrolleyDrawer, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if d := f.db.drawerByID(id); d != nil {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (f *FakeDrawerStore) List(ctx context.Context, offset, limit int) ([]entity.TrolleyDrawer, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return paginate(f.db.drawers, offset, limit), int64(len(f.db.drawers)), nil
}

func (f *FakeDrawerStore) Update(ctx context.Context, drawer *entity.TrolleyDrawer) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, d := range f.db.drawers {
		if d.ID == drawer.ID {
			drawer.UpdatedAt = time.Now()
			stored := *drawer
			stored.Level, stored.Trolley = nil, nil
			f.db.drawers[i] = stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeDrawerStore) Delete(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, d := range f.db.drawers {
		if d.ID == id {
			f.db.drawers = append(f.db.drawers[:i], f.db.drawers[i+1:]...)
			for j := range f.db.readings {
				if f.db.readings[j].DrawerRefID != nil && *f.db.readings[j].DrawerRefID == id {
					f.db.readings[j].DrawerRefID = nil
				}
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeProductStore implements service.ProductStore.
type FakeProductStore struct {
	db *MemDB
}

func (f *FakeProductStore) Create(ctx context.Context, product *entity.Product) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	product.ID = f.db.nextID()
	now := time.Now()
	product.CreatedAt, product.UpdatedAt = now, now
	f.db.products = append(f.db.products, *product)
	return nil
}

func (f *FakeProductStore) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if p := f.db.productByID(id); p != nil {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *FakeProductStore) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, p := range f.db.products {
		if p.SKU == sku {
			out := p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeProductStore) List(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]entity.Product, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	matched := []entity.Product{}
	for _, p := range f.db.products {
		if filter.Category != "" && !containsFold(p.Category, filter.Category) {
			continue
		}
		if filter.AvailableOnly && p.StockQuantity <= 0 {
			continue
		}
		if filter.Search != "" {
			desc := ""
			if p.Description != nil {
				desc = *p.Description
			}
			if !containsFold(p.Name, filter.Search) && !containsFold(desc, filter.Search) && !containsFold(p.SKU, filter.Search) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (f *FakeProductStore) Update(ctx context.Context, product *entity.Product) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, p := range f.db.products {
		if p.ID == product.ID {
			product.UpdatedAt = time.Now()
			f.db.products[i] = *product
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeProductStore) Delete(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, p := range f.db.products {
		if p.ID == id {
			f.db.products = append(f.db.products[:i], f.db.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeProductStore) SetStock(ctx context.Context, id uint, quantity int) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i := range f.db.products {
		if f.db.products[i].ID == id {
			f.db.products[i].StockQuantity = quantity
			f.db.products[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeProductStore) DecreaseStock(ctx context.Context, id uint, amount int) (int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i := range f.db.products {
		if f.db.products[i].ID == id && f.db.products[i].StockQuantity >= amount {
			f.db.products[i].StockQuantity -= amount
			f.db.products[i].UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

// FakeSpecificationStore implements service.SpecificationStore.
type FakeSpecificationStore struct {
	db *MemDB
}

func (f *FakeSpecificationStore) Create(ctx context.Context, spec *entity.Specification) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	spec.ID = f.db.nextID()
	now := time.Now()
	spec.CreatedAt, spec.UpdatedAt = now, now
	stored := *spec
	stored.Items, stored.TrolleyTemplate = nil, nil
	f.db.specs = append(f.db.specs, stored)
	return nil
}

func (f *FakeSpecificationStore) FindByID(ctx context.Context, id uint) (*entity.Specification, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, s := range f.db.specs {
		if s.ID == id {
			out := s
			out.Items = f.itemsOf(s.ID)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeSpecificationStore) List(ctx context.Context, offset, limit int) ([]entity.Specification, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return paginate(f.db.specs, offset, limit), int64(len(f.db.specs)), nil
}

func (f *FakeSpecificationStore) ListByTemplate(ctx context.Context, trolleyID uint, specID string) ([]entity.Specification, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []entity.Specification{}
	for _, s := range f.db.specs {
		if s.TrolleyTemplateID == nil || *s.TrolleyTemplateID != trolleyID {
			continue
		}
		if specID != "" && s.SpecID != specID {
			continue
		}
		s.Items = f.itemsOf(s.ID)
		out = append(out, s)
	}
	return out, nil
}

func (f *FakeSpecificationStore) itemsOf(specID uint) []entity.SpecificationItem {
	items := []entity.SpecificationItem{}
	for _, it := range f.db.specItems {
		if it.SpecificationID == specID {
			it.Product = f.db.productByID(it.ProductID)
			it.Drawer = f.db.drawerByID(it.DrawerID)
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (f *FakeSpecificationStore) Update(ctx context.Context, spec *entity.Specification) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, s := range f.db.specs {
		if s.ID == spec.ID {
			spec.UpdatedAt = time.Now()
			stored := *spec
			stored.Items, stored.TrolleyTemplate = nil, nil
			f.db.specs[i] = stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeSpecificationStore) Delete(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, s := range f.db.specs {
		if s.ID == id {
			f.db.specs = append(f.db.specs[:i], f.db.specs[i+1:]...)
			kept := f.db.specItems[:0]
			for _, it := range f.db.specItems {
				if it.SpecificationID != id {
					kept = append(kept, it)
				}
			}
			f.db.specItems = kept
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeSpecificationStore) CreateItem(ctx context.Context, item *entity.SpecificationItem) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	item.ID = f.db.nextID()
	stored := *item
	stored.Specification, stored.Drawer, stored.Product = nil, nil, nil
	f.db.specItems = append(f.db.specItems, stored)
	return nil
}

func (f *FakeSpecificationStore) FindItemByID(ctx context.Context, id uint) (*entity.SpecificationItem, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, it := range f.db.specItems {
		if it.ID == id {
			out := it
			out.Product = f.db.productByID(it.ProductID)
			out.Drawer = f.db.drawerByID(it.DrawerID)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeSpecificationStore) ListItems(ctx context.Context, offset, limit int) ([]entity.SpecificationItem, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return paginate(f.db.specItems, offset, limit), int64(len(f.db.specItems)), nil
}

func (f *FakeSpecificationStore) UpdateItem(ctx context.Context, item *entity.SpecificationItem) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, it := range f.db.specItems {
		if it.ID == item.ID {
			stored := *item
			stored.Specification, stored.Drawer, stored.Product = nil, nil, nil
			f.db.specItems[i] = stored
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *FakeSpecificationStore) DeleteItem(ctx context.Context, id uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for i, it := range f.db.specItems {
		if it.ID == id {
			f.db.specItems = append(f.db.specItems[:i], f.db.specItems[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeSensorReadingStore implements service.SensorReadingStore.
type FakeSensorReadingStore struct {
	db *MemDB
}

func (f *FakeSensorReadingStore) Create(ctx context.Context, reading *entity.SensorReading) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	reading.ID = f.db.nextID()
	now := time.Now()
	reading.CreatedAt, reading.UpdatedAt = now, now
	stored := *reading
	stored.Drawer = nil
	f.db.readings = append(f.db.readings, stored)
	return nil
}

func (f *FakeSensorReadingStore) FindByID(ctx context.Context, id uint) (*entity.SensorReading, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, r := range f.db.readings {
		if r.ID == id {
			out := r
			if r.DrawerRefID != nil {
				out.Drawer = f.db.drawerByID(*r.DrawerRefID)
			}
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func matchReading(r entity.SensorReading, filter repository.ReadingFilter) bool {
	if filter.FlightNumber != "" && r.FlightNumber != filter.FlightNumber {
		return false
	}
	if filter.AlertFlag != "" && r.AlertFlag != filter.AlertFlag {
		return false
	}
	if filter.SensorType != "" && r.SensorType != filter.SensorType {
		return false
	}
	if filter.DrawerID != 0 && (r.DrawerRefID == nil || *r.DrawerRefID != filter.DrawerID) {
		return false
	}
	return true
}

func sortReadings(readings []entity.SensorReading) {
	sort.Slice(readings, func(i, j int) bool {
		if !readings[i].Timestamp.Equal(readings[j].Timestamp) {
			return readings[i].Timestamp.After(readings[j].Timestamp)
		}
		return readings[i].ID > readings[j].ID
	})
}

func (f *FakeSensorReadingStore) List(ctx context.Context, filter repository.ReadingFilter, offset, limit int) ([]entity.SensorReading, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	matched := []entity.SensorReading{}
	for _, r := range f.db.readings {
		if matchReading(r, filter) {
			matched = append(matched, r)
		}
	}
	sortReadings(matched)
	return paginate(matched, offset, limit), int64(len(matched)), nil
}

func (f *FakeSensorReadingStore) ListByDrawers(ctx context.Context, drawerIDs []uint, filter repository.ReadingFilter) ([]entity.SensorReading, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	ids := make(map[uint]bool, len(drawerIDs))
	for _, id := range drawerIDs {
		ids[id] = true
	}
	matched := []entity.SensorReading{}
	for _, r := range f.db.readings {
		if r.DrawerRefID == nil || !ids[*r.DrawerRefID] {
			continue
		}
		if matchReading(r, filter) {
			matched = append(matched, r)
		}
	}
	sortReadings(matched)
	return matched, nil
}

// FakeQRScanStore implements service.QRScanStore.
type FakeQRScanStore struct {
	db *MemDB
}

func (f *FakeQRScanStore) Create(ctx context.Context, scan *entity.QRScan, trolleyIDs []uint) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, tid := range trolleyIDs {
		found := false
		for _, t := range f.db.trolleys {
			if t.ID == tid {
				found = true
				break
			}
		}
		if !found {
			return repository.ErrNotFound
		}
	}
	scan.ID = f.db.nextID()
	now := time.Now()
	scan.CreatedAt, scan.UpdatedAt = now, now
	stored := *scan
	stored.Trolleys = nil
	f.db.scans = append(f.db.scans, stored)
	f.db.scanTrolleys[scan.ID] = append([]uint{}, trolleyIDs...)
	scan.Trolleys = f.trolleysOf(scan.ID)
	return nil
}

func (f *FakeQRScanStore) trolleysOf(scanID uint) []entity.Trolley {
	out := []entity.Trolley{}
	for _, tid := range f.db.scanTrolleys[scanID] {
		for _, t := range f.db.trolleys {
			if t.ID == tid {
				out = append(out, t)
			}
		}
	}
	return out
}

func (f *FakeQRScanStore) FindByID(ctx context.Context, id uint) (*entity.QRScan, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, s := range f.db.scans {
		if s.ID == id {
			out := s
			out.Trolleys = f.trolleysOf(s.ID)
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeQRScanStore) List(ctx context.Context, offset, limit int) ([]entity.QRScan, int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	scans := make([]entity.QRScan, len(f.db.scans))
	copy(scans, f.db.scans)
	sort.Slice(scans, func(i, j int) bool { return scans[i].ID > scans[j].ID })
	for i := range scans {
		scans[i].Trolleys = f.trolleysOf(scans[i].ID)
	}
	return paginate(scans, offset, limit), int64(len(scans)), nil
}

func (f *FakeQRScanStore) Latest(ctx context.Context) (*entity.QRScan, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	if len(f.db.scans) == 0 {
		return nil, repository.ErrNotFound
	}
	latest := f.db.scans[0]
	for _, s := range f.db.scans[1:] {
		if s.CreatedAt.After(latest.CreatedAt) || (s.CreatedAt.Equal(latest.CreatedAt) && s.ID > latest.ID) {
			latest = s
		}
	}
	out := latest
	out.Trolleys = f.trolleysOf(latest.ID)
	return &out, nil
}
