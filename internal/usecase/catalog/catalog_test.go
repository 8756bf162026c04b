package catalog

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"testing"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/imageproc"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/storage"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

// ======================================================
// Fakes
// ======================================================

type memStorage struct {
	objects map[string][]byte
	n       int
}

func newMemStorage() *memStorage { return &memStorage{objects: map[string][]byte{}} }

func (s *memStorage) Put(_ context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.PutResult{}, err
	}
	s.n++
	key := "obj-" + strconv.Itoa(s.n) + "-" + in.Filename
	s.objects[key] = data
	return storage.PutResult{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

type memProducts struct {
	rows      map[uint]models.Product
	next      uint
	createErr error
	updateErr error
}

func newMemProducts() *memProducts { return &memProducts{rows: map[uint]models.Product{}, next: 1} }

func (r *memProducts) List(context.Context, domain.ProductFilter) ([]models.Product, error) {
	out := make([]models.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProducts) Get(_ context.Context, id uint) (*models.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *memProducts) Create(_ context.Context, p *models.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = r.next
	r.next++
	r.rows[p.ID] = *p
	return nil
}

func (r *memProducts) Update(_ context.Context, p *models.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *memProducts) Delete(_ context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memProducts) Count(context.Context) (int64, error) { return int64(len(r.rows)), nil }

func pngUpload(t *testing.T) *ImageUpload {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return &ImageUpload{Filename: "terno.png", Data: buf.Bytes()}
}

func productForm() validators.ProductForm {
	return validators.ProductForm{
		Name:     "Terno Slim Fit Azul Marinho",
		Brand:    "Alfaiataria Premium",
		Price:    "750",
		Category: "Terno",
		Sizes:    []string{"P, M", "G", "M"},
	}
}

func newProducts() (*Products, *memProducts, *memStorage) {
	repo := newMemProducts()
	store := newMemStorage()
	return NewProducts(repo, NewImages(store, imageproc.Options{MaxDimension: 64, Quality: 75}), nil), repo, store
}

// ======================================================
// Tests
// ======================================================

func TestCreateProductUploadsOptimizedImage(t *testing.T) {
	uc, repo, store := newProducts()

	p, err := uc.Create(context.Background(), 1, ProductInput{Form: productForm(), Image: pngUpload(t)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(store.objects) != 1 {
		t.Fatalf("objects = %d", len(store.objects))
	}
	if _, ok := store.objects[p.ImageKey]; !ok {
		t.Fatalf("product key %q not stored", p.ImageKey)
	}
	if p.ImageKey != "obj-1-terno.webp" {
		t.Fatalf("key = %q", p.ImageKey)
	}
	if got := repo.rows[p.ID].Sizes; len(got) != 3 || got[0] != "P" || got[1] != "M" || got[2] != "G" {
		t.Fatalf("sizes = %v", got)
	}
	if repo.rows[p.ID].Price.String() != "750" {
		t.Fatalf("price = %s", repo.rows[p.ID].Price)
	}
}

func TestCreateProductRemovesImageWhenRowFails(t *testing.T) {
	uc, repo, store := newProducts()
	repo.createErr = errors.New("insert failed")

	if _, err := uc.Create(context.Background(), 1, ProductInput{Form: productForm(), Image: pngUpload(t)}); err == nil {
		t.Fatal("expected error")
	}
	if len(store.objects) != 0 {
		t.Fatalf("orphan objects left: %v", store.objects)
	}
}

func TestCreateProductRequiresImage(t *testing.T) {
	uc, _, _ := newProducts()

	_, err := uc.Create(context.Background(), 1, ProductInput{Form: productForm()})
	ve, ok := httperr.AsValidation(err)
	if !ok || !ve.Has("image_required") {
		t.Fatalf("err = %v", err)
	}

	p, err := uc.Create(context.Background(), 1, ProductInput{Form: productForm(), ImageURL: "https://images.example.com/terno.jpg"})
	if err != nil || p.ImageKey != "" {
		t.Fatalf("external url: %+v, %v", p, err)
	}
}

func TestCreateProductRejectsBadImage(t *testing.T) {
	uc, _, store := newProducts()

	_, err := uc.Create(context.Background(), 1, ProductInput{
		Form:  productForm(),
		Image: &ImageUpload{Filename: "x.png", Data: []byte("not an image")},
	})
	ve, ok := httperr.AsValidation(err)
	if !ok || !ve.Has("invalid_image") {
		t.Fatalf("err = %v", err)
	}
	if len(store.objects) != 0 {
		t.Fatal("nothing should be uploaded")
	}
}

func TestCreateProductValidatesPrice(t *testing.T) {
	uc, _, _ := newProducts()
	f := productForm()
	f.Price = "0"

	_, err := uc.Create(context.Background(), 1, ProductInput{Form: f, ImageURL: "https://x"})
	ve, ok := httperr.AsValidation(err)
	if !ok || ve.Fields[0].Field != "price" {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateProductReplacesImage(t *testing.T) {
	uc, _, store := newProducts()
	ctx := context.Background()

	p, err := uc.Create(ctx, 1, ProductInput{Form: productForm(), Image: pngUpload(t)})
	if err != nil {
		t.Fatal(err)
	}
	oldKey := p.ImageKey

	updated, err := uc.Update(ctx, 1, p.ID, ProductInput{Form: productForm(), Image: pngUpload(t)})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ImageKey == oldKey {
		t.Fatal("image key did not change")
	}
	if _, ok := store.objects[oldKey]; ok {
		t.Fatal("old object should be deleted")
	}
	if len(store.objects) != 1 {
		t.Fatalf("objects = %d", len(store.objects))
	}
}

func TestUpdateProductFailureKeepsOldImage(t *testing.T) {
	uc, repo, store := newProducts()
	ctx := context.Background()

	p, err := uc.Create(ctx, 1, ProductInput{Form: productForm(), Image: pngUpload(t)})
	if err != nil {
		t.Fatal(err)
	}

	repo.updateErr = errors.New("update failed")
	if _, err := uc.Update(ctx, 1, p.ID, ProductInput{Form: productForm(), Image: pngUpload(t)}); err == nil {
		t.Fatal("expected error")
	}
	if len(store.objects) != 1 {
		t.Fatalf("objects = %d", len(store.objects))
	}
	if _, ok := store.objects[p.ImageKey]; !ok {
		t.Fatal("old object should survive a failed update")
	}
}

func TestDeleteProductRemovesImage(t *testing.T) {
	uc, repo, store := newProducts()
	ctx := context.Background()

	p, err := uc.Create(ctx, 1, ProductInput{Form: productForm(), Image: pngUpload(t)})
	if err != nil {
		t.Fatal(err)
	}
	if err := uc.Delete(ctx, 1, p.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.rows) != 0 || len(store.objects) != 0 {
		t.Fatalf("rows=%d objects=%d", len(repo.rows), len(store.objects))
	}
	if err := uc.Delete(ctx, 1, p.ID); !httperr.IsBusiness(err, "product_not_found") {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestListRejectsUnknownCategory(t *testing.T) {
	uc, _, _ := newProducts()
	_, err := uc.List(context.Background(), domain.ProductFilter{Category: "Chapéu"})
	if !httperr.IsBusiness(err, "invalid_category") {
		t.Fatalf("err = %v", err)
	}
}
