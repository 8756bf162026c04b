package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BruksfildServices01/lahermandad/internal/config"
)

func TestLocalPutAndDelete(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal(dir, "/uploads/")
	ctx := context.Background()

	res, err := l.Put(ctx, strings.NewReader("img"), PutInput{Filename: "Terno.WEBP"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if !strings.HasSuffix(res.Key, ".webp") {
		t.Fatalf("key = %q, want .webp suffix", res.Key)
	}
	if res.URL != "/uploads/"+res.Key {
		t.Fatalf("url = %q", res.URL)
	}

	data, err := os.ReadFile(filepath.Join(dir, res.Key))
	if err != nil || string(data) != "img" {
		t.Fatalf("stored file = %q, %v", data, err)
	}

	if err := l.Delete(ctx, res.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, res.Key)); !os.IsNotExist(err) {
		t.Fatal("file still present after delete")
	}
	if err := l.Delete(ctx, res.Key); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestLocalDeleteStaysInsideBaseDir(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "keep.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(outside)

	l := NewLocal(dir, "/uploads")
	if err := l.Delete(context.Background(), "../keep.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatal("delete escaped the base directory")
	}
}

func TestSafeExt(t *testing.T) {
	cases := map[string]string{
		"a.JPG":  ".jpg",
		"a.png":  ".png",
		"a.exe":  "",
		"noext":  "",
		"x.webp": ".webp",
	}
	for in, want := range cases {
		if got := safeExt(in); got != want {
			t.Errorf("safeExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromConfig(t *testing.T) {
	res, err := FromConfig(config.StorageConfig{Driver: "local", LocalDir: t.TempDir(), LocalURLPrefix: "/uploads"})
	if err != nil || res.Driver != "local" {
		t.Fatalf("local: %+v, %v", res, err)
	}

	if _, err := FromConfig(config.StorageConfig{Driver: "s3"}); err == nil {
		t.Fatal("s3 without bucket should fail")
	}

	res, err = FromConfig(config.StorageConfig{
		Driver:          "s3",
		S3Endpoint:      "https://project.storage.example.com/storage/v1/s3",
		S3Region:        "sa-east-1",
		S3Bucket:        "products",
		S3AccessKeyID:   "key",
		S3SecretKey:     "secret",
		S3PublicBaseURL: "https://cdn.example.com/products/",
	})
	if err != nil || res.Driver != "s3" {
		t.Fatalf("s3: %+v, %v", res, err)
	}
	if s := res.Storage.(*S3); s.PublicBaseURL != "https://cdn.example.com/products" {
		t.Fatalf("public base = %q", s.PublicBaseURL)
	}

	if _, err := FromConfig(config.StorageConfig{Driver: "ftp"}); err == nil {
		t.Fatal("unknown driver should fail")
	}
}
