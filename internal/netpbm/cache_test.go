package netpbm

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// createTestImage writes a chess bitmap to a temporary PBM file and returns
// its path.
func createTestImage(t *testing.T, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodePBM(&buf, mustChess(t, width, height, 5, imaging.Black)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return writeTempFile(t, "test-image-*.pbm", buf.Bytes())
}

func TestNewCache(t *testing.T) {
	cache := NewCache()
	if cache == nil {
		t.Fatal("NewCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewCache did not initialize images map")
	}
}

func TestCache_Load(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 100, 80)

	// First load
	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1 == nil {
		t.Fatal("Load returned nil image")
	}
	if img1.Width() != 100 || img1.Height() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", img1.Width(), img1.Height())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestCache_Load_NonExistent(t *testing.T) {
	cache := NewCache()
	_, err := cache.Load("/nonexistent/path/to/image.pbm")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
	if cache.Len() != 0 {
		t.Error("failed loads must not be cached")
	}
}

func TestCache_Load_InvalidImage(t *testing.T) {
	cache := NewCache()
	path := writeTempFile(t, "invalid-image-*.pbm", []byte("not an image"))

	_, err := cache.Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50)

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", cache.Len())
	}
}

func TestCache_Evict(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50)

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(imgPath)

	cache.mu.RLock()
	_, exists := cache.images[imgPath]
	cache.mu.RUnlock()

	if exists {
		t.Error("Evict did not remove image from cache")
	}
}

func TestCache_Evict_ReloadsFromDisk(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 20, 20)

	first, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePBM(&buf, mustChess(t, 30, 10, 5, imaging.Black)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	if err := os.WriteFile(imgPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to overwrite file: %v", err)
	}

	cache.Evict(imgPath)
	second, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if second == first || second.Width() != 30 {
		t.Error("Load after Evict should read the new file")
	}
}

func TestCache_Evict_NonExistent(t *testing.T) {
	cache := NewCache()
	// Should not panic
	cache.Evict("/nonexistent/path")
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50)

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	// Concurrent loads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(imgPath)
			if err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 200, 150)

	info, err := LoadImageInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Colors != 2 {
		t.Errorf("Colors: got %d, want 2", info.Colors)
	}
	if info.Format != FormatPBM {
		t.Errorf("Format: got %s, want pbm", info.Format)
	}
	// Header "P4\n200 150\n" plus 25 bytes per row.
	if want := int64(len("P4\n200 150\n") + 25*150); info.FileSizeBytes != want {
		t.Errorf("FileSizeBytes: got %d, want %d", info.FileSizeBytes, want)
	}
}

func TestLoadImageInfo_FormatDetection(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"pbm", "P4\n8 1\n\x0f", FormatPBM},
		{"ppm", "P3\n1 1\n255\n1 2 3\n", FormatPPM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewCache()
			// Extension deliberately misleading.
			path := writeTempFile(t, "test-format-*.img", []byte(tt.data))

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format: got %s, want %s", info.Format, tt.format)
			}
		})
	}
}

func TestLoadImageInfo_NonExistent(t *testing.T) {
	cache := NewCache()
	_, err := LoadImageInfo(cache, "/nonexistent/image.pbm")
	if err == nil {
		t.Error("LoadImageInfo should fail for non-existent file")
	}
}
