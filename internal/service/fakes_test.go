package service

import (
	"strings"

	"go-inventory-admin/internal/model"
	"go-inventory-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the gorm repositories. WithTx runs
// the mutation against a snapshot and only publishes it on success, so a
// rejected mutation leaves the store untouched, like a rolled-back
// transaction.
type fakeStore struct {
	products  map[uuid.UUID]model.Product
	purchases map[uuid.UUID]model.Purchase
	sales     map[uuid.UUID]model.Sale
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[uuid.UUID]model.Product),
		purchases: make(map[uuid.UUID]model.Purchase),
		sales:     make(map[uuid.UUID]model.Sale),
	}
}

func (f *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range f.products {
		c.products[k] = v
	}
	for k, v := range f.purchases {
		c.purchases[k] = v
	}
	for k, v := range f.sales {
		c.sales[k] = v
	}
	return c
}

func (f *fakeStore) addProduct(name string, stock int) uuid.UUID {
	id := uuid.New()
	f.products[id] = model.Product{
		BaseModel:     model.BaseModel{ID: id},
		Name:          name,
		Category:      "general",
		PurchasePrice: decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(15),
		StockQuantity: stock,
	}
	return id
}

func (f *fakeStore) addPurchase(productID uuid.UUID, qty int) uuid.UUID {
	id := uuid.New()
	f.purchases[id] = model.Purchase{
		BaseModel: model.BaseModel{ID: id},
		ProductID: productID,
		Quantity:  qty,
	}
	return id
}

func (f *fakeStore) addSale(productID uuid.UUID, qty int) uuid.UUID {
	id := uuid.New()
	f.sales[id] = model.Sale{
		BaseModel: model.BaseModel{ID: id},
		ProductID: productID,
		Quantity:  qty,
	}
	return id
}

func (f *fakeStore) stock(id uuid.UUID) int {
	return f.products[id].StockQuantity
}

// --- product repository ---

type fakeProductRepo struct {
	s *fakeStore
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindAll(query string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.s.products {
		if query == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) FindByName(name string) (*model.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			cp := p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	if _, ok := r.s.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.products, id)
	return nil
}

// --- shared product-side tx statements ---

type fakeStockTx struct {
	s *fakeStore
}

func (t *fakeStockTx) ProductForUpdate(id uuid.UUID) (*model.Product, error) {
	p, ok := t.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (t *fakeStockTx) AdjustStock(productID uuid.UUID, delta int) error {
	p, ok := t.s.products[productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity += delta
	t.s.products[productID] = p
	return nil
}

// --- purchase repository ---

type fakePurchaseRepo struct {
	s *fakeStore
}

func (r *fakePurchaseRepo) FindAll() ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.s.purchases {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePurchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakePurchaseRepo) WithTx(fn func(tx repository.PurchaseTx) error) error {
	trial := r.s.clone()
	if err := fn(&fakePurchaseTx{fakeStockTx{trial}}); err != nil {
		return err
	}
	*r.s = *trial
	return nil
}

type fakePurchaseTx struct {
	fakeStockTx
}

func (t *fakePurchaseTx) Get(id uuid.UUID) (*model.Purchase, error) {
	p, ok := t.s.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (t *fakePurchaseTx) Insert(purchase *model.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	t.s.purchases[purchase.ID] = *purchase
	return nil
}

func (t *fakePurchaseTx) Update(purchase *model.Purchase) error {
	if _, ok := t.s.purchases[purchase.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	t.s.purchases[purchase.ID] = *purchase
	return nil
}

func (t *fakePurchaseTx) Delete(id uuid.UUID) error {
	if _, ok := t.s.purchases[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(t.s.purchases, id)
	return nil
}

// --- sale repository ---

type fakeSaleRepo struct {
	s *fakeStore
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.s.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	s, ok := r.s.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSaleRepo) WithTx(fn func(tx repository.SaleTx) error) error {
	trial := r.s.clone()
	if err := fn(&fakeSaleTx{fakeStockTx{trial}}); err != nil {
		return err
	}
	*r.s = *trial
	return nil
}

type fakeSaleTx struct {
	fakeStockTx
}

func (t *fakeSaleTx) Get(id uuid.UUID) (*model.Sale, error) {
	s, ok := t.s.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (t *fakeSaleTx) Insert(sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	t.s.sales[sale.ID] = *sale
	return nil
}

func (t *fakeSaleTx) Update(sale *model.Sale) error {
	if _, ok := t.s.sales[sale.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	t.s.sales[sale.ID] = *sale
	return nil
}

func (t *fakeSaleTx) Delete(id uuid.UUID) error {
	if _, ok := t.s.sales[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(t.s.sales, id)
	return nil
}

// --- report repository ---

type fakeReportRepo struct {
	revenue  map[string]decimal.Decimal
	expenses map[string]decimal.Decimal
	reports  map[string]model.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{
		revenue:  make(map[string]decimal.Decimal),
		expenses: make(map[string]decimal.Decimal),
		reports:  make(map[string]model.Report),
	}
}

func (r *fakeReportRepo) MonthlyRevenue(month string) (decimal.Decimal, error) {
	if v, ok := r.revenue[month]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (r *fakeReportRepo) MonthlyExpenses(month string) (decimal.Decimal, error) {
	if v, ok := r.expenses[month]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (r *fakeReportRepo) Upsert(report *model.Report) error {
	if existing, ok := r.reports[report.Month]; ok {
		report.ID = existing.ID
	} else if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	r.reports[report.Month] = *report
	return nil
}

func (r *fakeReportRepo) FindAll() ([]model.Report, error) {
	var out []model.Report
	for _, rep := range r.reports {
		out = append(out, rep)
	}
	return out, nil
}

func (r *fakeReportRepo) DeleteByMonth(month string) error {
	delete(r.reports, month)
	return nil
}
